// Package tui implements the interactive terminal front-end of itemctl.
//
// The TUI is a Bubble Tea program that drives a view.Controller. Key presses
// map to controller operations, which run as tea.Cmd goroutines and report
// back with an opDoneMsg. The model then takes a fresh view.Page snapshot
// and draws it. Nothing in this package keeps its own copy of the item list.
//
// # Dialogs
//
// The controller blocks on view.Dialogs while an alert or confirmation is
// open. Dialogs bridges that to the event loop: the operation goroutine sends
// a dialog message to the program and waits on a reply channel, and the model
// shows a modal until the user answers.
//
// # Usage Example
//
//	client, _ := items.NewClient("http://localhost:3000")
//	if err := tui.Run(ctx, client, tui.Options{Origin: client.Origin}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Keys
//
//   - v: show or hide items
//   - g: fetch the backend greeting
//   - r: refresh the list
//   - a, tab: focus the add form
//   - up/down, k/j: select an item
//   - e: edit the selected item
//   - d: delete the selected item
//   - enter: save the focused form
//   - esc: leave the focused form, cancelling an edit
//   - ?: toggle full help
//   - q, ctrl+c: quit
package tui
