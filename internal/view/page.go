package view

// Inputs holds the two text fields of a create or edit form
type Inputs struct {
	Name        string
	Description string
}

// Fragment is a rendered message with an optional hint line
type Fragment struct {
	Text string
	Hint string
	Err  bool
}

// Region is the item area: either nodes or an error fragment
type Region struct {
	Nodes []Node
	Err   *Fragment
}

// Page is a snapshot of everything a front-end draws
type Page struct {
	ItemsVisible bool

	// Status is the greeting fragment, nil until the first fetch
	Status *Fragment

	// Count is the count header from the last successful refresh, nil before
	// one. A failed refresh leaves it untouched.
	Count *int

	Region Region

	// NewItem holds the create form fields
	NewItem Inputs

	// EditInputs holds the edit form fields, keyed by item id. Only ids
	// rendered as edit forms have an entry.
	EditInputs map[int]Inputs
}

// ToggleLabel is the label of the visibility toggle
func (p Page) ToggleLabel() string {
	if p.ItemsVisible {
		return LabelHideItems
	}
	return LabelShowItems
}

// Node returns the rendered node for id
func (p Page) Node(id int) (Node, bool) {
	for _, n := range p.Region.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

func (p Page) clone() Page {
	out := p
	if p.Status != nil {
		s := *p.Status
		out.Status = &s
	}
	if p.Count != nil {
		n := *p.Count
		out.Count = &n
	}
	if p.Region.Err != nil {
		f := *p.Region.Err
		out.Region.Err = &f
	}
	if p.Region.Nodes != nil {
		out.Region.Nodes = make([]Node, len(p.Region.Nodes))
		for i, n := range p.Region.Nodes {
			n.Actions = append([]Action(nil), n.Actions...)
			out.Region.Nodes[i] = n
		}
	}
	out.EditInputs = make(map[int]Inputs, len(p.EditInputs))
	for id, in := range p.EditInputs {
		out.EditInputs[id] = in
	}
	return out
}
