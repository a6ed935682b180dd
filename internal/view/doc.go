// Package view implements the item list controller shared by the interactive
// front-end and the one-shot CLI commands.
//
// A Controller owns two pieces of UI state (whether the item list is visible
// and which item, if any, is being edited) and a Page: the rendered subtree
// that a front-end draws. Every operation is triggered by a user event, talks
// to the items API at most once per request it needs, and re-renders the Page
// from the response. Operations never return errors. Failures become page
// fragments (greeting, item region) or blocking alerts through Dialogs.
//
// # Rendering
//
// Render is a pure function from (State, items) to a list of Nodes. Each node
// is a read-only card or an inline edit form, and carries its actions as data
// bound to the item id:
//
//	nodes := view.Render(view.State{EditingID: view.IDPtr(5)}, list)
//	for _, n := range nodes {
//	    if n.Kind == view.KindEditForm { ... }
//	}
//
// # Concurrency
//
// Operations may be called from several goroutines. A mutex guards memory
// only: overlapping operations are neither serialized nor cancelled, and the
// refresh that finishes last wins the render.
package view
