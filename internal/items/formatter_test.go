package items

import (
	"strings"
	"testing"
)

func sampleItems() []Item {
	return []Item{
		{ID: 3, Name: "Widget", Description: "blue"},
		{ID: 1, Name: "Gadget"},
	}
}

func TestItem_Summary(t *testing.T) {
	summary := sampleItems()[1].Summary()

	if strings.Count(summary, "\n") > 0 {
		t.Error("Summary() should return a single line")
	}
	if summary != "#1 Gadget (No description)" {
		t.Errorf("Summary() = %q", summary)
	}
}

func TestFormatCompact(t *testing.T) {
	out := FormatCompact(sampleItems(), 0)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if lines[0] != "Total items: 2" {
		t.Errorf("first line = %q, want count header", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "Widget") || !strings.Contains(lines[2], "Gadget") {
		t.Errorf("items out of server order: %q", lines[1:])
	}
}

func TestFormatCompact_Truncates(t *testing.T) {
	list := []Item{{ID: 1, Name: strings.Repeat("x", 100)}}
	out := FormatCompact(list, 20)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n")[1:] {
		if len([]rune(line)) > 20 {
			t.Errorf("line %q exceeds width 20", line)
		}
		if !strings.HasSuffix(line, "…") {
			t.Errorf("line %q should end with an ellipsis", line)
		}
	}
}

func TestFormatDetailed(t *testing.T) {
	out := FormatDetailed(sampleItems())

	for _, want := range []string{"Total items: 2", "ID:          3", "Description: blue", "Description: No description"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatDetailed() missing %q", want)
		}
	}
}
