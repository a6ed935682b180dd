package items

import "testing"

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"Valid: simple", "Widget", false},
		{"Valid: whitespace only is sent as typed", "   ", false},
		{"Invalid: empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !IsValidationError(err) {
					t.Errorf("Expected validation error, got %T", err)
				}
				if err.Error() != MsgNameRequired {
					t.Errorf("Error() = %q, want %q", err.Error(), MsgNameRequired)
				}
			}
		})
	}
}

func TestValidateInput(t *testing.T) {
	if err := ValidateInput(Input{Name: "Widget"}); err != nil {
		t.Errorf("ValidateInput() error = %v, want nil (empty description is allowed)", err)
	}
	if err := ValidateInput(Input{Description: "orphan"}); err == nil {
		t.Error("ValidateInput() should reject an empty name")
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{" 42 ", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseID(%q) = %d, want %d", tt.in, got, tt.want)
		}
		if err != nil && !IsValidationError(err) {
			t.Errorf("ParseID(%q) error type = %T, want validation error", tt.in, err)
		}
	}
}
