package items

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// NoDescription is displayed in place of an empty description
const NoDescription = "No description"

// DisplayDescription returns the description, or NoDescription when empty
func (i Item) DisplayDescription() string {
	if i.Description == "" {
		return NoDescription
	}
	return i.Description
}

// Summary returns a one-line summary of the item
func (i Item) Summary() string {
	return fmt.Sprintf("#%d %s (%s)", i.ID, i.Name, i.DisplayDescription())
}

// FormatCount returns the count header for a fetched list
func FormatCount(n int) string {
	return fmt.Sprintf("Total items: %d", n)
}

// FormatCompact returns one line per item. Lines longer than width are
// truncated; width <= 0 disables truncation.
func FormatCompact(list []Item, width int) string {
	var b strings.Builder

	b.WriteString(FormatCount(len(list)))
	b.WriteString("\n")
	for _, item := range list {
		line := fmt.Sprintf("%4d  %s - %s", item.ID, item.Name, item.DisplayDescription())
		if width > 0 {
			line = ansi.Truncate(line, width, "…")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// FormatDetailed returns a block per item with every field
func FormatDetailed(list []Item) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s ===\n", FormatCount(len(list))))
	for _, item := range list {
		b.WriteString("\n")
		b.WriteString(item.FormatDetailed())
	}

	return b.String()
}

// FormatDetailed returns a multi-line description of a single item
func (i Item) FormatDetailed() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("ID:          %d\n", i.ID))
	b.WriteString(fmt.Sprintf("Name:        %s\n", i.Name))
	b.WriteString(fmt.Sprintf("Description: %s\n", i.DisplayDescription()))

	return b.String()
}

// FormatHealth returns a formatted health report
func (h *Health) FormatHealth() string {
	var b strings.Builder

	b.WriteString("=== Service Health ===\n")
	b.WriteString(fmt.Sprintf("Status:   %s\n", h.Status))
	b.WriteString(fmt.Sprintf("Service:  %s\n", h.Service))
	b.WriteString(fmt.Sprintf("Uptime:   %s\n", FormatUptime(h.Uptime)))
	b.WriteString(fmt.Sprintf("Database: %s (%s)\n", h.Database, h.DatabaseType))

	return b.String()
}

// FormatUptime renders an uptime in seconds as a rounded duration
func FormatUptime(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	return d.Round(time.Second).String()
}
