package urls

import (
	"strings"
	"testing"
)

func TestItem(t *testing.T) {
	if got := Item(42); got != "/items/42" {
		t.Errorf("Item(42) = %q, want /items/42", got)
	}
}

func TestContract(t *testing.T) {
	if len(Contract) != 6 {
		t.Fatalf("Contract has %d routes, want 6", len(Contract))
	}
	seen := make(map[string]bool)
	for _, r := range Contract {
		key := r.Method + " " + r.Path
		if seen[key] {
			t.Errorf("duplicate route %s", key)
		}
		seen[key] = true
	}
	for _, want := range []string{"GET /hii", "POST /items", "DELETE /items/{id}"} {
		if !seen[want] {
			t.Errorf("missing route %s", want)
		}
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(LocalAPIBase, "http://localhost:3000")

	for _, want := range []string{
		"API base: `http://localhost:5000/api`",
		"| GET | `/hii` | - | text body (message) |",
		"| PUT | `/items/{id}` | {name, description} |",
		"`GET http://localhost:3000/health`",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if rows := strings.Count(md, "\n| "); rows != len(Contract)+1 {
		t.Errorf("table rows = %d, want %d", rows, len(Contract)+1)
	}
}
