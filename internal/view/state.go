package view

// State is the controller's UI state
type State struct {
	// ItemsVisible reports whether the item region is shown
	ItemsVisible bool

	// EditingID is the item currently in inline-edit mode, nil when none.
	// At most one item is editable at a time.
	EditingID *int
}

// IsEditing reports whether id is the item in edit mode
func (s State) IsEditing(id int) bool {
	return s.EditingID != nil && *s.EditingID == id
}

func (s State) clone() State {
	out := State{ItemsVisible: s.ItemsVisible}
	if s.EditingID != nil {
		out.EditingID = IDPtr(*s.EditingID)
	}
	return out
}

// IDPtr returns a pointer to id
func IDPtr(id int) *int {
	return &id
}
