package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/itemctl/internal/items"
	"github.com/muurk/itemctl/internal/logging"
	"github.com/muurk/itemctl/internal/ui"
	"github.com/muurk/itemctl/internal/view"
)

// mode is which part of the screen owns the keyboard
type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

// Message types for async operations
type (
	// opDoneMsg is returned by every controller operation once it finishes
	opDoneMsg struct {
		op view.Op
	}

	// loadMsg triggers the startup fetch
	loadMsg struct{}
)

// Options configures the TUI
type Options struct {
	// Origin is shown in the title bar
	Origin string

	// ShowItems shows the item list on start
	ShowItems bool
}

// failures keeps the most recent failed operation reported by the controller.
// A later success of the same operation clears it.
type failures struct {
	mu   sync.Mutex
	last *view.Event
}

func (f *failures) record(ev view.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case ev.Err != nil:
		f.last = &ev
	case f.last != nil && f.last.Op == ev.Op:
		f.last = nil
	}
}

// message returns a one-line summary of the last failure, or ""
func (f *failures) message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.last == nil {
		return ""
	}
	return fmt.Sprintf("%s failed: %s", f.last.Op, items.GetShortErrorMessage(f.last.Err))
}

// Model is the Bubble Tea model of the item manager
type Model struct {
	ctrl *view.Controller
	ctx  context.Context
	opts Options

	// Last snapshot taken from the controller
	page    view.Page
	state   view.State
	failed  *failures
	failure string

	// UI state
	Width  int
	Height int

	mode     mode
	cursor   int // selected node in the item region
	editID   int // item the user asked to edit, 0 for none
	addNext  int // focused add field: 0 name, 1 description
	editNext int // focused edit field

	nameInput textinput.Model
	descInput textinput.Model
	editName  textinput.Model
	editDesc  textinput.Model

	// Open dialogs, oldest first. Only the head is shown.
	dialogs []dialogMsg

	browseKeys browseKeyMap
	formKeys   formKeyMap
	dialogKeys dialogKeyMap
	help       help.Model
	spinner    spinner.Model
	busy       int // operations in flight

	quitting bool
}

// NewModel creates the model and its controller over api and dialogs.
// Operations started by the model run with ctx.
func NewModel(ctx context.Context, api view.API, dialogs view.Dialogs, opts Options) Model {
	failed := &failures{}
	ctrl := view.NewController(api, dialogs, view.WithNotify(failed.record))

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(BusyStyle),
	)

	m := Model{
		ctrl:       ctrl,
		ctx:        ctx,
		opts:       opts,
		failed:     failed,
		nameInput:  newInput("Item name", 120),
		descInput:  newInput("Description (optional)", 500),
		editName:   newInput("Item name", 120),
		editDesc:   newInput("Description", 500),
		browseKeys: newBrowseKeyMap(),
		formKeys:   newFormKeyMap(),
		dialogKeys: newDialogKeyMap(),
		help:       help.New(),
		spinner:    s,
	}
	m.page = ctrl.Page()
	m.state = ctrl.State()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return ti
}

// Run starts the TUI against api and blocks until the user quits
func Run(ctx context.Context, api view.API, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	dialogs := NewDialogs()
	p := tea.NewProgram(NewModel(ctx, api, dialogs, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	dialogs.Attach(p)

	logging.Debug("Starting TUI")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.opts.ShowItems {
		return func() tea.Msg { return loadMsg{} }
	}
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case loadMsg:
		if m.state.ItemsVisible {
			return m, m.perform(view.OpRefreshList, m.ctrl.RefreshList)
		}
		return m, m.perform(view.OpToggleVisibility, m.ctrl.ToggleVisibility)

	case opDoneMsg:
		if m.busy > 0 {
			m.busy--
		}
		m.sync()
		return m, nil

	case dialogMsg:
		m.dialogs = append(m.dialogs, msg)
		m.sync()
		return m, nil

	case spinner.TickMsg:
		if m.busy == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if len(m.dialogs) > 0 {
			return m.updateDialog(msg)
		}
		switch m.mode {
		case modeAdd:
			return m.updateAddForm(msg)
		case modeEdit:
			return m.updateEditForm(msg)
		}
		return m.updateBrowse(msg)
	}

	return m.updateInputs(msg)
}

// perform runs fn as a command and reports completion with an opDoneMsg
func (m *Model) perform(op view.Op, fn func(context.Context)) tea.Cmd {
	ctx := m.ctx
	run := func() tea.Msg {
		fn(ctx)
		return opDoneMsg{op: op}
	}

	m.busy++
	if m.busy == 1 {
		return tea.Batch(run, m.spinner.Tick)
	}
	return run
}

// dispatch runs the controller action bound to id
func (m *Model) dispatch(kind view.ActionKind, id int) tea.Cmd {
	ctrl := m.ctrl
	action := view.Action{Kind: kind, ID: id}
	return m.perform(opFor(kind), func(ctx context.Context) {
		ctrl.Dispatch(ctx, action)
	})
}

func opFor(kind view.ActionKind) view.Op {
	switch kind {
	case view.ActionEdit:
		return view.OpBeginEdit
	case view.ActionDelete:
		return view.OpDeleteItem
	case view.ActionSave:
		return view.OpSaveEdit
	default:
		return view.OpCancelEdit
	}
}

// sync takes a fresh snapshot and reconciles the local widgets with it
func (m *Model) sync() {
	m.page = m.ctrl.Page()
	m.state = m.ctrl.State()
	m.failure = m.failed.message()

	if n := len(m.page.Region.Nodes); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}

	if m.nameInput.Value() != m.page.NewItem.Name {
		m.nameInput.SetValue(m.page.NewItem.Name)
	}
	if m.descInput.Value() != m.page.NewItem.Description {
		m.descInput.SetValue(m.page.NewItem.Description)
	}

	_, hasForm := m.page.EditInputs[m.editID]
	switch {
	case m.mode == modeEdit && !hasForm:
		m.leaveEdit()
	case m.mode != modeEdit && m.editID != 0 && hasForm && m.state.IsEditing(m.editID):
		m.enterEdit()
	}
}

func (m *Model) enterEdit() {
	in := m.page.EditInputs[m.editID]
	m.editName.SetValue(in.Name)
	m.editDesc.SetValue(in.Description)
	m.editName.CursorEnd()
	m.editDesc.CursorEnd()

	m.nameInput.Blur()
	m.descInput.Blur()
	m.mode = modeEdit
	m.editNext = 0
	m.editName.Focus()
	m.editDesc.Blur()

	for i, n := range m.page.Region.Nodes {
		if n.ID == m.editID {
			m.cursor = i
		}
	}
}

func (m *Model) leaveEdit() {
	m.mode = modeBrowse
	m.editID = 0
	m.editName.Blur()
	m.editDesc.Blur()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	for _, d := range m.dialogs {
		d.reply <- false
	}
	m.dialogs = nil
	m.quitting = true
	return m, tea.Quit
}

// selectedNode returns the node under the cursor. Hidden items are never
// selected.
func (m Model) selectedNode() (view.Node, bool) {
	if !m.page.ItemsVisible || m.page.Region.Err != nil {
		return view.Node{}, false
	}
	if m.cursor < 0 || m.cursor >= len(m.page.Region.Nodes) {
		return view.Node{}, false
	}
	return m.page.Region.Nodes[m.cursor], true
}

func hasAction(n view.Node, kind view.ActionKind) bool {
	for _, a := range n.Actions {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.browseKeys.Quit):
		return m.quit()

	case key.Matches(msg, m.browseKeys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.browseKeys.Toggle):
		return m, m.perform(view.OpToggleVisibility, m.ctrl.ToggleVisibility)

	case key.Matches(msg, m.browseKeys.Greeting):
		return m, m.perform(view.OpFetchGreeting, m.ctrl.FetchGreeting)

	case key.Matches(msg, m.browseKeys.Refresh):
		return m, m.perform(view.OpRefreshList, m.ctrl.RefreshList)

	case key.Matches(msg, m.browseKeys.Add):
		m.mode = modeAdd
		return m, m.focusAdd(0)

	case key.Matches(msg, m.browseKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.browseKeys.Down):
		if m.cursor < len(m.page.Region.Nodes)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.browseKeys.Edit):
		n, ok := m.selectedNode()
		if !ok {
			return m, nil
		}
		m.editID = n.ID
		if n.Kind == view.KindEditForm {
			// Form already rendered, just give it the keyboard
			m.sync()
			return m, nil
		}
		if hasAction(n, view.ActionEdit) {
			return m, m.dispatch(view.ActionEdit, n.ID)
		}

	case key.Matches(msg, m.browseKeys.Delete):
		n, ok := m.selectedNode()
		if ok && hasAction(n, view.ActionDelete) {
			return m, m.dispatch(view.ActionDelete, n.ID)
		}
	}

	return m, nil
}

func (m *Model) focusAdd(field int) tea.Cmd {
	m.addNext = field
	if field == 0 {
		m.descInput.Blur()
		return m.nameInput.Focus()
	}
	m.nameInput.Blur()
	return m.descInput.Focus()
}

func (m *Model) focusEdit(field int) tea.Cmd {
	m.editNext = field
	if field == 0 {
		m.editDesc.Blur()
		return m.editName.Focus()
	}
	m.editName.Blur()
	return m.editDesc.Focus()
}

func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Back):
		m.mode = modeBrowse
		m.nameInput.Blur()
		m.descInput.Blur()
		return m, nil

	case key.Matches(msg, m.formKeys.Next):
		return m, m.focusAdd(1 - m.addNext)

	case key.Matches(msg, m.formKeys.Submit):
		m.ctrl.SetNewItemInput(m.nameInput.Value(), m.descInput.Value())
		return m, m.perform(view.OpCreateItem, m.ctrl.CreateItem)
	}

	var cmd tea.Cmd
	if m.addNext == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	m.ctrl.SetNewItemInput(m.nameInput.Value(), m.descInput.Value())
	return m, cmd
}

func (m Model) updateEditForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Back):
		id := m.editID
		m.leaveEdit()
		return m, m.dispatch(view.ActionCancel, id)

	case key.Matches(msg, m.formKeys.Next):
		return m, m.focusEdit(1 - m.editNext)

	case key.Matches(msg, m.formKeys.Submit):
		m.ctrl.SetEditInput(m.editID, m.editName.Value(), m.editDesc.Value())
		return m, m.dispatch(view.ActionSave, m.editID)
	}

	var cmd tea.Cmd
	if m.editNext == 0 {
		m.editName, cmd = m.editName.Update(msg)
	} else {
		m.editDesc, cmd = m.editDesc.Update(msg)
	}
	m.ctrl.SetEditInput(m.editID, m.editName.Value(), m.editDesc.Value())
	return m, cmd
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.dialogs[0]

	switch {
	case key.Matches(msg, m.dialogKeys.Yes):
		d.reply <- true
	case key.Matches(msg, m.dialogKeys.No):
		d.reply <- false
	default:
		return m, nil
	}

	m.dialogs = m.dialogs[1:]
	return m, nil
}

// updateInputs forwards cursor blink and other widget messages
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 4)
	m.nameInput, cmds[0] = m.nameInput.Update(msg)
	m.descInput, cmds[1] = m.descInput.Update(msg)
	m.editName, cmds[2] = m.editName.Update(msg)
	m.editDesc, cmds[3] = m.editDesc.Update(msg)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.contentWidth()
	if len(m.dialogs) > 0 {
		return RenderModal(m.renderDialog(m.dialogs[0]), m.Width, m.Height)
	}

	sections := []string{m.renderHeader(width)}
	if status := ui.RenderStatus(m.page.Status, width); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.renderAddForm(width))
	if m.page.ItemsVisible {
		if region := m.renderItems(width); region != "" {
			sections = append(sections, region)
		}
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) contentWidth() int {
	switch {
	case m.Width <= 0:
		return ui.MinTerminalWidth
	case m.Width > ui.MaxContentWidth:
		return ui.MaxContentWidth
	case m.Width < ui.MinTerminalWidth:
		return ui.MinTerminalWidth
	}
	return m.Width
}

func (m Model) renderHeader(width int) string {
	title := TitleStyle.Render(AppName)
	sub := SubtitleStyle.Render(fmt.Sprintf("%s  %s", m.opts.Origin, AppVersion()))
	toggle := ToggleStyle.Render("v " + m.page.ToggleLabel())

	left := lipgloss.JoinHorizontal(lipgloss.Bottom, title, " ", sub)
	gap := width - lipgloss.Width(left) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, lipgloss.NewStyle().Width(gap).Render(""), toggle)
}

func (m Model) renderAddForm(width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		SectionTitleStyle.Render("Add New Item"),
		FieldLabelStyle.Render("Name:")+m.nameInput.View(),
		FieldLabelStyle.Render("Description:")+m.descInput.View(),
	)
	return FormStyle(width, m.mode == modeAdd).Render(body)
}

func (m Model) renderItems(width int) string {
	var parts []string
	if count := ui.RenderCount(m.page.Count); count != "" {
		parts = append(parts, count)
	}

	if m.page.Region.Err != nil {
		parts = append(parts, ui.RenderFragment(*m.page.Region.Err, width))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for i, n := range m.page.Region.Nodes {
		if n.Kind == view.KindEditForm {
			in := m.page.EditInputs[n.ID]
			name, desc := in.Name, in.Description
			if m.mode == modeEdit && n.ID == m.editID {
				name, desc = m.editName.View(), m.editDesc.View()
			}
			parts = append(parts, ui.RenderEditForm(n, name, desc, width))
			continue
		}
		parts = append(parts, ui.RenderCard(n, width, m.mode == modeBrowse && i == m.cursor))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderFooter() string {
	var keys help.KeyMap = m.browseKeys
	if m.mode != modeBrowse {
		keys = m.formKeys
	}
	line := m.help.View(keys)
	if m.busy > 0 {
		line = BusyStyle.Render(m.spinner.View()+" Working…") + "  " + line
	}
	if m.failure != "" {
		line = FailureStyle.Render(ui.FailureMarker+" "+m.failure) + "\n" + line
	}
	return line
}

func (m Model) renderDialog(d dialogMsg) string {
	confirm := d.kind == dialogConfirm
	hint := "enter: ok"
	if confirm {
		hint = "y: yes  n: no"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		DialogTextStyle.Render(d.text),
		"",
		DialogHintStyle.Render(hint),
	)
	return DialogStyle(SafeModalWidth(60, m.contentWidth()), confirm).Render(content)
}
