package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender delivers messages into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

type dialogKind int

const (
	dialogAlert dialogKind = iota
	dialogConfirm
)

// dialogMsg asks the model to open a modal. The answer goes to reply, which
// is buffered so the model never blocks on it.
type dialogMsg struct {
	kind  dialogKind
	text  string
	reply chan bool
}

// Dialogs implements view.Dialogs on top of a Bubble Tea program. Each call
// blocks the calling operation until the model answers or ctx is done.
type Dialogs struct {
	mu     sync.Mutex
	sender Sender
}

// NewDialogs creates dialogs with no program attached
func NewDialogs() *Dialogs {
	return &Dialogs{}
}

// Attach connects the dialogs to a program. Until then alerts return at once
// and confirmations decline.
func (d *Dialogs) Attach(s Sender) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sender = s
}

// Alert shows msg in a modal and waits for it to be dismissed
func (d *Dialogs) Alert(ctx context.Context, msg string) {
	d.ask(ctx, dialogAlert, msg)
}

// Confirm shows msg with yes/no choices and reports the answer
func (d *Dialogs) Confirm(ctx context.Context, msg string) bool {
	return d.ask(ctx, dialogConfirm, msg)
}

func (d *Dialogs) ask(ctx context.Context, kind dialogKind, text string) bool {
	d.mu.Lock()
	s := d.sender
	d.mu.Unlock()
	if s == nil {
		return false
	}

	reply := make(chan bool, 1)
	s.Send(dialogMsg{kind: kind, text: text, reply: reply})

	select {
	case ok := <-reply:
		return ok
	case <-ctx.Done():
		return false
	}
}
