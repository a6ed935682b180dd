package view

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/itemctl/internal/items"
	"github.com/muurk/itemctl/internal/logging"
)

// API is the subset of the items client the controller needs
type API interface {
	Greeting(ctx context.Context) (string, error)
	ListItems(ctx context.Context) ([]items.Item, error)
	CreateItem(ctx context.Context, in items.Input) (*items.Item, error)
	UpdateItem(ctx context.Context, id int, in items.Input) (*items.Item, error)
	DeleteItem(ctx context.Context, id int) error
}

// Dialogs shows blocking notifications. Both methods block the calling
// operation until the user dismisses them.
type Dialogs interface {
	Alert(ctx context.Context, msg string)
	Confirm(ctx context.Context, msg string) bool
}

// Op names a controller operation
type Op string

const (
	OpToggleVisibility Op = "toggleVisibility"
	OpFetchGreeting    Op = "fetchGreeting"
	OpRefreshList      Op = "refreshList"
	OpBeginEdit        Op = "beginEdit"
	OpCancelEdit       Op = "cancelEdit"
	OpSaveEdit         Op = "saveEdit"
	OpCreateItem       Op = "createItem"
	OpDeleteItem       Op = "deleteItem"
)

// Event reports how an operation ended. Err is nil on success; Declined is
// set when the user answered no to a confirmation.
type Event struct {
	Op       Op
	ID       int
	Err      error
	Declined bool
}

// Option configures a Controller
type Option func(*Controller)

// WithState sets the initial UI state
func WithState(s State) Option {
	return func(c *Controller) {
		c.state = s.clone()
		c.page.ItemsVisible = s.ItemsVisible
	}
}

// WithNotify registers fn to receive an Event after every operation
func WithNotify(fn func(Event)) Option {
	return func(c *Controller) {
		c.notify = fn
	}
}

// Controller owns the UI state and the rendered Page
type Controller struct {
	api     API
	dialogs Dialogs
	notify  func(Event)

	// mu exists only because the interactive UI runs operations on tea.Cmd
	// goroutines. It guards memory; operations are not serialized, and it is
	// never held across a request or dialog.
	mu    sync.Mutex
	state State
	page  Page
}

// NewController creates a controller with hidden items and no edit in progress
func NewController(api API, dialogs Dialogs, opts ...Option) *Controller {
	c := &Controller{
		api:     api,
		dialogs: dialogs,
		page:    Page{EditInputs: make(map[int]Inputs)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the UI state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Page returns a snapshot of the rendered page
func (c *Controller) Page() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page.clone()
}

// SetNewItemInput models typing into the create form
func (c *Controller) SetNewItemInput(name, description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.NewItem = Inputs{Name: name, Description: description}
}

// SetEditInput models typing into the edit form for id. It reports false when
// no edit form is rendered for id.
func (c *Controller) SetEditInput(id int, name, description string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.page.EditInputs[id]; !ok {
		return false
	}
	c.page.EditInputs[id] = Inputs{Name: name, Description: description}
	return true
}

// ToggleVisibility flips item visibility. Showing the list refreshes it;
// hiding it sends no request.
func (c *Controller) ToggleVisibility(ctx context.Context) {
	c.mu.Lock()
	c.state.ItemsVisible = !c.state.ItemsVisible
	c.page.ItemsVisible = c.state.ItemsVisible
	shown := c.state.ItemsVisible
	c.mu.Unlock()

	c.emit(Event{Op: OpToggleVisibility})
	if shown {
		c.RefreshList(ctx)
	}
}

// FetchGreeting requests the greeting and renders it into the status fragment
func (c *Controller) FetchGreeting(ctx context.Context) {
	text, err := c.api.Greeting(ctx)

	c.mu.Lock()
	if err != nil {
		c.page.Status = &Fragment{Text: greetingFailed(err), Hint: HintGreeting, Err: true}
	} else {
		c.page.Status = &Fragment{Text: greetingText(text)}
	}
	c.mu.Unlock()

	c.emit(Event{Op: OpFetchGreeting, Err: err})
}

// RefreshList fetches the items and re-renders the count header and item
// region. On failure the region shows the error and the count is left as is.
func (c *Controller) RefreshList(ctx context.Context) {
	list, err := c.api.ListItems(ctx)

	c.mu.Lock()
	if err != nil {
		c.page.Region = Region{Err: &Fragment{Text: listFailed(err), Hint: HintList, Err: true}}
		c.syncEditInputs(nil)
	} else {
		n := len(list)
		c.page.Count = &n
		nodes := Render(c.state, list)
		c.page.Region = Region{Nodes: nodes}
		c.syncEditInputs(nodes)
	}
	c.mu.Unlock()

	c.emit(Event{Op: OpRefreshList, Err: err})
}

// BeginEdit puts id in edit mode and refreshes. An id missing from the
// fetched list renders no form.
func (c *Controller) BeginEdit(ctx context.Context, id int) {
	c.mu.Lock()
	c.state.EditingID = IDPtr(id)
	c.mu.Unlock()

	c.emit(Event{Op: OpBeginEdit, ID: id})
	c.RefreshList(ctx)
}

// CancelEdit leaves edit mode and refreshes
func (c *Controller) CancelEdit(ctx context.Context) {
	c.mu.Lock()
	c.state.EditingID = nil
	c.mu.Unlock()

	c.emit(Event{Op: OpCancelEdit})
	c.RefreshList(ctx)
}

// SaveEdit sends the edit form for id. On success edit mode is cleared and the
// list refreshed; on failure edit state is left unchanged.
func (c *Controller) SaveEdit(ctx context.Context, id int) {
	c.mu.Lock()
	in, ok := c.page.EditInputs[id]
	c.mu.Unlock()

	if !ok {
		err := fmt.Errorf("no edit form for item %d", id)
		c.dialogs.Alert(ctx, updateFailed(err))
		c.emit(Event{Op: OpSaveEdit, ID: id, Err: err})
		return
	}

	input := items.Input{Name: in.Name, Description: in.Description}
	if err := items.ValidateInput(input); err != nil {
		c.dialogs.Alert(ctx, MsgNameRequired)
		c.emit(Event{Op: OpSaveEdit, ID: id, Err: err})
		return
	}

	if _, err := c.api.UpdateItem(ctx, id, input); err != nil {
		c.dialogs.Alert(ctx, updateFailed(err))
		c.emit(Event{Op: OpSaveEdit, ID: id, Err: err})
		return
	}

	c.mu.Lock()
	c.state.EditingID = nil
	c.mu.Unlock()

	c.emit(Event{Op: OpSaveEdit, ID: id})
	c.RefreshList(ctx)
}

// CreateItem sends the create form. On success the inputs are cleared, the
// list is refreshed if visible, and a confirmation is always shown. On failure
// the inputs are preserved.
func (c *Controller) CreateItem(ctx context.Context) {
	c.mu.Lock()
	in := c.page.NewItem
	c.mu.Unlock()

	input := items.Input{Name: in.Name, Description: in.Description}
	if err := items.ValidateInput(input); err != nil {
		c.dialogs.Alert(ctx, MsgNameRequired)
		c.emit(Event{Op: OpCreateItem, Err: err})
		return
	}

	created, err := c.api.CreateItem(ctx, input)
	if err != nil {
		c.dialogs.Alert(ctx, addFailed(err))
		c.emit(Event{Op: OpCreateItem, Err: err})
		return
	}

	c.mu.Lock()
	c.page.NewItem = Inputs{}
	visible := c.state.ItemsVisible
	c.mu.Unlock()

	if visible {
		c.RefreshList(ctx)
	}
	c.dialogs.Alert(ctx, MsgItemAdded)

	ev := Event{Op: OpCreateItem}
	if created != nil {
		ev.ID = created.ID
	}
	c.emit(ev)
}

// DeleteItem asks for confirmation, deletes id and refreshes. The refresh
// happens whether or not the list is visible.
func (c *Controller) DeleteItem(ctx context.Context, id int) {
	if !c.dialogs.Confirm(ctx, MsgConfirmDelete) {
		c.emit(Event{Op: OpDeleteItem, ID: id, Declined: true})
		return
	}

	if err := c.api.DeleteItem(ctx, id); err != nil {
		c.dialogs.Alert(ctx, deleteFailed(err))
		c.emit(Event{Op: OpDeleteItem, ID: id, Err: err})
		return
	}

	c.emit(Event{Op: OpDeleteItem, ID: id})
	c.RefreshList(ctx)
}

// Dispatch runs the operation bound to a node action
func (c *Controller) Dispatch(ctx context.Context, a Action) {
	switch a.Kind {
	case ActionEdit:
		c.BeginEdit(ctx, a.ID)
	case ActionDelete:
		c.DeleteItem(ctx, a.ID)
	case ActionSave:
		c.SaveEdit(ctx, a.ID)
	case ActionCancel:
		c.CancelEdit(ctx)
	}
}

// syncEditInputs rebuilds the inputs of every rendered edit form from its
// fetched node and drops inputs for forms no longer rendered. Must be called
// with mu held.
func (c *Controller) syncEditInputs(nodes []Node) {
	keep := make(map[int]Inputs, 1)
	for _, n := range nodes {
		if n.Kind == KindEditForm {
			keep[n.ID] = Inputs{Name: n.Name, Description: n.Description}
		}
	}
	c.page.EditInputs = keep
}

func (c *Controller) emit(ev Event) {
	if ev.Err != nil {
		logging.LogOperation(string(ev.Op), zap.Int("id", ev.ID), zap.Error(ev.Err))
	} else {
		logging.LogOperation(string(ev.Op), zap.Int("id", ev.ID), zap.Bool("declined", ev.Declined))
	}
	if c.notify != nil {
		c.notify(ev)
	}
}
