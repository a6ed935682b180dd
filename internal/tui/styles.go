package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/itemctl/internal/ui"
	"github.com/muurk/itemctl/internal/version"
)

// AppName is shown in the title bar
const AppName = "ITEMCTL"

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

var (
	// TitleStyle is the application title in the header bar
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true)

	// SubtitleStyle is for the origin and version next to the title
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)

	// ToggleStyle is the visibility toggle label
	ToggleStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Background(ui.PrimaryColor).
			Padding(0, 1)

	// SectionTitleStyle is for "Add New Item" and similar headings
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ui.SuccessColor).
				Bold(true)

	// FieldLabelStyle is for form field labels
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Width(13)

	// BusyStyle is for the spinner line while operations are in flight
	BusyStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor)

	// FailureStyle is for the last failed operation in the footer
	FailureStyle = lipgloss.NewStyle().
			Foreground(ui.ErrorColor)

	// DialogTextStyle is for modal body text
	DialogTextStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor)

	// DialogHintStyle is for the key hint under modal text
	DialogHintStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)
)

// FormStyle returns the border style of the add form. A focused form gets
// a green border.
func FormStyle(width int, focused bool) lipgloss.Style {
	border := ui.MutedColor
	if focused {
		border = ui.SuccessColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 1)
}

// DialogStyle returns the border style of a modal. Confirmations use the
// warning color.
func DialogStyle(width int, confirm bool) lipgloss.Style {
	border := ui.PrimaryColor
	if confirm {
		border = ui.WarningColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(width)
}

// SafeModalWidth returns the smaller of requestedWidth and what fits in the
// terminal, never below 30 columns
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 30 {
		maxWidth = 30
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}

// RenderModal centers modalContent on a dimmed screen of the given size
func RenderModal(modalContent string, terminalWidth, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
