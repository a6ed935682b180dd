package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/itemctl/internal/items"
	"github.com/muurk/itemctl/internal/view"
)

const ellipsis = "…"

// RenderStatus renders the greeting fragment. Nil renders nothing.
func RenderStatus(f *view.Fragment, width int) string {
	if f == nil {
		return ""
	}
	return RenderFragment(*f, width)
}

// RenderFragment renders a message with its hint line
func RenderFragment(f view.Fragment, width int) string {
	if !f.Err {
		return StatusOKStyle.Render(ansi.Truncate(f.Text, width, ellipsis))
	}
	lines := []string{ErrorMessageStyle.Render(f.Text)}
	if f.Hint != "" {
		lines = append(lines, HintStyle.Render(f.Hint))
	}
	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderCount renders the count header. Nil renders nothing.
func RenderCount(count *int) string {
	if count == nil {
		return ""
	}
	return CountStyle.Render(items.FormatCount(*count))
}

// RenderCard renders a read-only item card. Long text is truncated to fit.
func RenderCard(n view.Node, width int, selected bool) string {
	inner := width - 6 // border and padding
	if inner < 10 {
		inner = 10
	}

	badge := ItemIDStyle.Render(fmt.Sprintf("#%d", n.ID))
	name := ItemNameStyle.Render(ansi.Truncate(n.Name, inner-lipgloss.Width(badge)-1, ellipsis))
	desc := ItemDescriptionStyle.Render(ansi.Truncate(n.Description, inner, ellipsis))

	return CardStyle(width, selected).Render(lipgloss.JoinVertical(lipgloss.Left, badge+" "+name, desc))
}

// RenderEditForm renders an inline edit form. nameField and descField are the
// already-rendered input widgets (or plain values on the console).
func RenderEditForm(n view.Node, nameField, descField string, width int) string {
	title := lipgloss.NewStyle().Foreground(WarningColor).Bold(true).Render(fmt.Sprintf("Editing Item #%d", n.ID))
	label := HeaderParamKeyStyle.PaddingLeft(0).Width(13)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		label.Render("Name:")+nameField,
		label.Render("Description:")+descField,
	)
	return EditFormStyle(width).Render(body)
}

// RenderRegion renders the count header followed by the item region
func RenderRegion(page view.Page, width int) string {
	var parts []string

	if c := RenderCount(page.Count); c != "" {
		parts = append(parts, c)
	}

	if page.Region.Err != nil {
		parts = append(parts, RenderFragment(*page.Region.Err, width))
		return strings.Join(parts, "\n")
	}

	for _, n := range page.Region.Nodes {
		if n.Kind == view.KindEditForm {
			in := page.EditInputs[n.ID]
			parts = append(parts, RenderEditForm(n, in.Name, in.Description, width))
			continue
		}
		parts = append(parts, RenderCard(n, width, false))
	}

	return strings.Join(parts, "\n")
}
