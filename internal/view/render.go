package view

import "github.com/muurk/itemctl/internal/items"

// NodeKind distinguishes the two ways an item is drawn
type NodeKind int

const (
	// KindCard is a read-only item card
	KindCard NodeKind = iota
	// KindEditForm is an inline edit form
	KindEditForm
)

func (k NodeKind) String() string {
	switch k {
	case KindCard:
		return "card"
	case KindEditForm:
		return "edit-form"
	default:
		return "unknown"
	}
}

// ActionKind names an event a node can emit
type ActionKind int

const (
	ActionEdit ActionKind = iota
	ActionDelete
	ActionSave
	ActionCancel
)

func (a ActionKind) String() string {
	switch a {
	case ActionEdit:
		return "Edit"
	case ActionDelete:
		return "Delete"
	case ActionSave:
		return "Save"
	case ActionCancel:
		return "Cancel"
	default:
		return "?"
	}
}

// Action is an event binding attached to a node
type Action struct {
	Kind ActionKind
	ID   int
}

// Node is one rendered item.
// For cards Description is display text ("No description" when empty); for
// edit forms it is the raw value used to seed the description input.
type Node struct {
	Kind        NodeKind
	ID          int
	Name        string
	Description string
	Actions     []Action
}

// Render maps state and a fetched list to nodes, one per item in server
// order. The item whose id equals state.EditingID becomes an edit form; an
// EditingID missing from list simply produces no form.
func Render(state State, list []items.Item) []Node {
	nodes := make([]Node, 0, len(list))
	for _, it := range list {
		if state.IsEditing(it.ID) {
			nodes = append(nodes, Node{
				Kind:        KindEditForm,
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				Actions: []Action{
					{Kind: ActionSave, ID: it.ID},
					{Kind: ActionCancel, ID: it.ID},
				},
			})
			continue
		}
		nodes = append(nodes, Node{
			Kind:        KindCard,
			ID:          it.ID,
			Name:        it.Name,
			Description: it.DisplayDescription(),
			Actions: []Action{
				{Kind: ActionEdit, ID: it.ID},
				{Kind: ActionDelete, ID: it.ID},
			},
		})
	}
	return nodes
}
