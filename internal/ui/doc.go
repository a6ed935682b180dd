// Package ui provides terminal output components for the itemctl CLI.
//
// Components render with Lipgloss and follow a "print and exit" pattern:
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success, failure and warning boxes
//   - Cards and edit forms: the rendered item region of a view.Page
//   - ConsoleDialogs: view.Dialogs backed by the terminal (alerts are boxes,
//     confirmations read y/N from stdin)
//
// The card and edit form renderers are shared with the interactive UI so that
// both front-ends draw items the same way.
//
// # Color
//
// DisableColor switches every style to plain ASCII. Commands call it for
// --no-color and tests call it for stable output.
package ui
