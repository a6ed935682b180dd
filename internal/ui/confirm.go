package ui

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConsoleDialogs implements view.Dialogs on a plain terminal: alerts are
// printed as boxes and confirmations read a y/N answer from the input.
type ConsoleDialogs struct {
	printer   *Printer
	in        *bufio.Reader
	assumeYes bool
}

// NewConsoleDialogs creates dialogs reading answers from in and printing to
// p. With assumeYes every confirmation is accepted without prompting.
func NewConsoleDialogs(p *Printer, in io.Reader, assumeYes bool) *ConsoleDialogs {
	if in == nil {
		in = os.Stdin
	}
	return &ConsoleDialogs{
		printer:   p,
		in:        bufio.NewReader(in),
		assumeYes: assumeYes,
	}
}

// Alert prints msg in a box and returns once it is written
func (d *ConsoleDialogs) Alert(ctx context.Context, msg string) {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 2)
	d.printer.Println(style.Render(msg))
}

// Confirm prompts with msg and reads a y/N answer. Anything other than
// "y" or "yes" declines, as does a read error or end of input.
func (d *ConsoleDialogs) Confirm(ctx context.Context, msg string) bool {
	if d.assumeYes {
		return true
	}

	prompt := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render(WarningMarker + "  " + msg + " [y/N]: ")
	d.printer.Print(prompt)

	input, err := d.in.ReadString('\n')
	if err != nil && input == "" {
		d.printer.Newline()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		d.printer.Println(lipgloss.NewStyle().Foreground(MutedColor).Render("  Operation cancelled."))
		return false
	}
}
