package items

import "testing"

func TestResolveAPIBase(t *testing.T) {
	tests := []struct {
		origin  string
		want    string
		wantErr bool
	}{
		{"http://localhost:3000", "http://localhost:5000/api", false},
		{"http://localhost", "http://localhost:5000/api", false},
		{"https://localhost:8443/app", "http://localhost:5000/api", false},
		{"http://127.0.0.1:3000", "http://127.0.0.1:3000/api", false},
		{"https://items.example.com", "https://items.example.com/api", false},
		{"https://items.example.com/", "https://items.example.com/api", false},
		{"https://items.example.com/app", "https://items.example.com/api", false},
		{"https://items.example.com/app/index.html", "https://items.example.com/api", false},
		{"http://10.0.0.7:8080/ui/?tab=items", "http://10.0.0.7:8080/api", false},
		{"http://localhost.example.com", "http://localhost.example.com/api", false},
		{"localhost:3000", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			got, err := ResolveAPIBase(tt.origin)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveAPIBase(%q) error = %v, wantErr %v", tt.origin, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveAPIBase(%q) = %q, want %q", tt.origin, got, tt.want)
			}
		})
	}
}

func TestOriginOf(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:5000/api", "http://localhost:5000"},
		{"https://items.example.com/api", "https://items.example.com"},
		{"/api", ""},
	}

	for _, tt := range tests {
		if got := OriginOf(tt.base); got != tt.want {
			t.Errorf("OriginOf(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}
