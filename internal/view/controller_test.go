package view

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/muurk/itemctl/internal/items"
)

func TestToggleVisibility_ShowRendersCountAndCards(t *testing.T) {
	api := newFakeAPI(sampleList(4)...)
	c := NewController(api, &fakeDialogs{})

	c.ToggleVisibility(context.Background())
	page := c.Page()

	if !page.ItemsVisible || page.ToggleLabel() != LabelHideItems {
		t.Errorf("ItemsVisible = %v label = %q, want visible with %q", page.ItemsVisible, page.ToggleLabel(), LabelHideItems)
	}
	if page.Count == nil || *page.Count != 4 {
		t.Fatalf("Count = %v, want 4", page.Count)
	}
	if len(page.Region.Nodes) != 4 {
		t.Fatalf("rendered %d nodes, want 4", len(page.Region.Nodes))
	}
	for i, n := range page.Region.Nodes {
		if n.ID != 4-i || n.Kind != KindCard {
			t.Errorf("node[%d] = %+v, want card for id %d", i, n, 4-i)
		}
	}
}

func TestToggleVisibility_HideSendsNoRequest(t *testing.T) {
	api := newFakeAPI(sampleList(2)...)
	c := NewController(api, &fakeDialogs{}, WithState(State{ItemsVisible: true}))

	c.ToggleVisibility(context.Background())

	if c.State().ItemsVisible {
		t.Error("ItemsVisible should be false after hiding")
	}
	if len(api.Calls()) != 0 {
		t.Errorf("calls = %v, want none", api.Calls())
	}
	if c.Page().ToggleLabel() != LabelShowItems {
		t.Errorf("label = %q, want %q", c.Page().ToggleLabel(), LabelShowItems)
	}
}

func TestFetchGreeting(t *testing.T) {
	api := newFakeAPI()
	c := NewController(api, &fakeDialogs{})

	c.FetchGreeting(context.Background())

	st := c.Page().Status
	if st == nil || st.Err || st.Text != `Message from backend: "hii!"` {
		t.Errorf("Status = %+v", st)
	}
}

func TestFetchGreeting_Failure(t *testing.T) {
	api := newFakeAPI()
	api.errs["GET /hii"] = items.NewHTTPError(502, "")
	d := &fakeDialogs{}
	c := NewController(api, d)

	c.FetchGreeting(context.Background())

	st := c.Page().Status
	if st == nil || !st.Err {
		t.Fatalf("Status = %+v, want error fragment", st)
	}
	if st.Text != "Failed to get message: HTTP error! status: 502" {
		t.Errorf("Text = %q", st.Text)
	}
	if st.Hint != HintGreeting {
		t.Errorf("Hint = %q, want %q", st.Hint, HintGreeting)
	}
	if len(d.Alerts()) != 0 {
		t.Errorf("greeting failure should not alert, got %v", d.Alerts())
	}
}

func TestRefreshList_ServerErrorRendersRegionError(t *testing.T) {
	api := newFakeAPI(sampleList(3)...)
	c := NewController(api, &fakeDialogs{}, WithState(State{ItemsVisible: true}))

	c.RefreshList(context.Background())
	api.errs["GET /items"] = items.NewHTTPError(500, "")
	c.RefreshList(context.Background())

	page := c.Page()
	if page.Region.Err == nil {
		t.Fatal("Region.Err = nil, want error fragment")
	}
	if page.Region.Err.Text != "Error loading items: HTTP error! status: 500" {
		t.Errorf("Region.Err.Text = %q", page.Region.Err.Text)
	}
	if len(page.Region.Nodes) != 0 {
		t.Errorf("Region.Nodes = %v, want none", page.Region.Nodes)
	}
	// the count from the previous success is left stale
	if page.Count == nil || *page.Count != 3 {
		t.Errorf("Count = %v, want stale 3", page.Count)
	}
}

func TestRefreshList_FirstFailureHasNoCount(t *testing.T) {
	api := newFakeAPI()
	api.errs["GET /items"] = items.NewNetworkError("GET request failed", "", errors.New("connection reset"))
	c := NewController(api, &fakeDialogs{})

	c.RefreshList(context.Background())

	if c.Page().Count != nil {
		t.Errorf("Count = %v, want nil", c.Page().Count)
	}
}

func TestCreateItem_EmptyNameSendsNothing(t *testing.T) {
	api := newFakeAPI()
	d := &fakeDialogs{}
	c := NewController(api, d)

	c.SetNewItemInput("", "some description")
	c.CreateItem(context.Background())

	if len(api.Calls()) != 0 {
		t.Errorf("calls = %v, want none", api.Calls())
	}
	if got := c.Page().NewItem; got != (Inputs{Description: "some description"}) {
		t.Errorf("NewItem = %+v, want inputs unchanged", got)
	}
	if alerts := d.Alerts(); len(alerts) != 1 || alerts[0] != MsgNameRequired {
		t.Errorf("alerts = %v, want [%q]", alerts, MsgNameRequired)
	}
}

func TestCreateItem_Success(t *testing.T) {
	tests := []struct {
		name         string
		visible      bool
		wantRefreshs int
	}{
		{"hidden list is not refreshed", false, 0},
		{"visible list is refreshed", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			d := &fakeDialogs{}
			c := NewController(api, d, WithState(State{ItemsVisible: tt.visible}))

			c.SetNewItemInput("Widget", "")
			c.CreateItem(context.Background())

			muts := api.mutations()
			if len(muts) != 1 || muts[0].Method != "POST /items" || muts[0].Input != (items.Input{Name: "Widget"}) {
				t.Errorf("mutations = %+v, want one POST {Widget, \"\"}", muts)
			}
			if got := c.Page().NewItem; got != (Inputs{}) {
				t.Errorf("NewItem = %+v, want cleared", got)
			}
			if got := api.count("GET /items"); got != tt.wantRefreshs {
				t.Errorf("GET /items count = %d, want %d", got, tt.wantRefreshs)
			}
			if alerts := d.Alerts(); len(alerts) != 1 || alerts[0] != MsgItemAdded {
				t.Errorf("alerts = %v, want [%q]", alerts, MsgItemAdded)
			}
		})
	}
}

func TestCreateItem_FailureKeepsInputs(t *testing.T) {
	api := newFakeAPI()
	api.errs["POST /items"] = items.NewHTTPError(400, "")
	d := &fakeDialogs{}
	c := NewController(api, d, WithState(State{ItemsVisible: true}))

	c.SetNewItemInput("Widget", "blue")
	c.CreateItem(context.Background())

	if got := c.Page().NewItem; got != (Inputs{Name: "Widget", Description: "blue"}) {
		t.Errorf("NewItem = %+v, want preserved", got)
	}
	if alerts := d.Alerts(); len(alerts) != 1 || alerts[0] != "Error adding item: HTTP error! status: 400" {
		t.Errorf("alerts = %v", alerts)
	}
	if api.count("GET /items") != 0 {
		t.Error("failed create should not refresh")
	}
}

func TestBeginThenCancelEdit_OnlyGets(t *testing.T) {
	api := newFakeAPI(items.Item{ID: 5, Name: "Widget", Description: "blue"}, items.Item{ID: 6, Name: "Gadget"})
	c := NewController(api, &fakeDialogs{}, WithState(State{ItemsVisible: true}))
	ctx := context.Background()

	c.BeginEdit(ctx, 5)

	n, ok := c.Page().Node(5)
	if !ok || n.Kind != KindEditForm {
		t.Fatalf("node 5 = %+v, want edit form", n)
	}
	if in := c.Page().EditInputs[5]; in != (Inputs{Name: "Widget", Description: "blue"}) {
		t.Errorf("EditInputs[5] = %+v, want seeded from item", in)
	}

	c.CancelEdit(ctx)

	n, _ = c.Page().Node(5)
	if n.Kind != KindCard || n.Description != "blue" {
		t.Errorf("node 5 = %+v, want read-only card", n)
	}
	if c.State().EditingID != nil {
		t.Errorf("EditingID = %v, want nil", *c.State().EditingID)
	}
	if len(api.mutations()) != 0 {
		t.Errorf("mutations = %+v, want none", api.mutations())
	}
	if api.count("GET /items") != 2 {
		t.Errorf("GET /items count = %d, want 2", api.count("GET /items"))
	}
}

func TestBeginEdit_MissingIDIsSilent(t *testing.T) {
	api := newFakeAPI(sampleList(2)...)
	d := &fakeDialogs{}
	c := NewController(api, d)

	c.BeginEdit(context.Background(), 99)

	if id := c.State().EditingID; id == nil || *id != 99 {
		t.Errorf("EditingID = %v, want 99", id)
	}
	for _, n := range c.Page().Region.Nodes {
		if n.Kind == KindEditForm {
			t.Errorf("unexpected edit form for %d", n.ID)
		}
	}
	if len(d.Alerts()) != 0 {
		t.Errorf("alerts = %v, want none", d.Alerts())
	}
}

func TestSaveEdit_SendsOnePut(t *testing.T) {
	api := newFakeAPI(items.Item{ID: 5, Name: "OldName", Description: "current text"})
	c := NewController(api, &fakeDialogs{}, WithState(State{ItemsVisible: true}))
	ctx := context.Background()

	c.BeginEdit(ctx, 5)
	desc := c.Page().EditInputs[5].Description
	if !c.SetEditInput(5, "NewName", desc) {
		t.Fatal("SetEditInput(5) = false, want an edit form")
	}
	before := api.count("GET /items")

	c.SaveEdit(ctx, 5)

	muts := api.mutations()
	if len(muts) != 1 {
		t.Fatalf("mutations = %+v, want exactly one", muts)
	}
	if muts[0].Method != "PUT /items" || muts[0].ID != 5 {
		t.Errorf("mutation = %+v, want PUT /items/5", muts[0])
	}
	if muts[0].Input != (items.Input{Name: "NewName", Description: "current text"}) {
		t.Errorf("body = %+v", muts[0].Input)
	}
	if c.State().EditingID != nil {
		t.Error("edit mode should be cleared")
	}
	if api.count("GET /items") != before+1 {
		t.Error("list should be refreshed after save")
	}
	n, _ := c.Page().Node(5)
	if n.Kind != KindCard || n.Name != "NewName" {
		t.Errorf("node 5 = %+v, want card with new name", n)
	}
}

func TestSaveEdit_EmptyNameAlerts(t *testing.T) {
	api := newFakeAPI(items.Item{ID: 5, Name: "Widget"})
	d := &fakeDialogs{}
	c := NewController(api, d)
	ctx := context.Background()

	c.BeginEdit(ctx, 5)
	c.SetEditInput(5, "", "x")
	c.SaveEdit(ctx, 5)

	if len(api.mutations()) != 0 {
		t.Errorf("mutations = %+v, want none", api.mutations())
	}
	if alerts := d.Alerts(); len(alerts) != 1 || alerts[0] != MsgNameRequired {
		t.Errorf("alerts = %v", alerts)
	}
	if id := c.State().EditingID; id == nil || *id != 5 {
		t.Error("edit mode should be kept")
	}
}

func TestSaveEdit_FailureKeepsEditState(t *testing.T) {
	api := newFakeAPI(items.Item{ID: 5, Name: "Widget"})
	api.errs["PUT /items"] = items.NewHTTPError(500, "")
	d := &fakeDialogs{}
	c := NewController(api, d)
	ctx := context.Background()

	c.BeginEdit(ctx, 5)
	c.SetEditInput(5, "Renamed", "")
	c.SaveEdit(ctx, 5)

	if alerts := d.Alerts(); len(alerts) != 1 || alerts[0] != "Error updating item: HTTP error! status: 500" {
		t.Errorf("alerts = %v", alerts)
	}
	if id := c.State().EditingID; id == nil || *id != 5 {
		t.Error("edit mode should be kept")
	}
	if in := c.Page().EditInputs[5]; in.Name != "Renamed" {
		t.Errorf("EditInputs[5] = %+v, want typed value kept", in)
	}
}

func TestRefreshList_ReseedsEditInputs(t *testing.T) {
	api := newFakeAPI(items.Item{ID: 5, Name: "Old", Description: "d1"})
	c := NewController(api, &fakeDialogs{}, WithState(State{ItemsVisible: true}))
	ctx := context.Background()

	c.BeginEdit(ctx, 5)
	api.mu.Lock()
	api.list[0] = items.Item{ID: 5, Name: "New", Description: "d2"}
	api.mu.Unlock()
	c.RefreshList(ctx)

	page := c.Page()
	n, ok := page.Node(5)
	if !ok || n.Kind != KindEditForm || n.Name != "New" || n.Description != "d2" {
		t.Fatalf("node 5 = %+v, want edit form with fetched values", n)
	}
	if in := page.EditInputs[5]; in != (Inputs{Name: "New", Description: "d2"}) {
		t.Errorf("EditInputs[5] = %+v, want fetched values", in)
	}

	c.SaveEdit(ctx, 5)
	muts := api.mutations()
	if len(muts) != 1 || muts[0].Input != (items.Input{Name: "New", Description: "d2"}) {
		t.Errorf("mutations = %+v, want PUT with fetched values", muts)
	}
}

func TestSaveEdit_NoForm(t *testing.T) {
	api := newFakeAPI()
	d := &fakeDialogs{}
	c := NewController(api, d, WithState(State{EditingID: IDPtr(3)}))

	c.SaveEdit(context.Background(), 3)

	if len(api.Calls()) != 0 {
		t.Errorf("calls = %v, want none", api.Calls())
	}
	if alerts := d.Alerts(); len(alerts) != 1 || !strings.HasPrefix(alerts[0], "Error updating item: ") {
		t.Errorf("alerts = %v", alerts)
	}
}

func TestDeleteItem(t *testing.T) {
	tests := []struct {
		name        string
		confirm     bool
		visible     bool
		wantDeletes int
		wantGets    int
	}{
		{"declined", false, true, 0, 0},
		{"confirmed while visible", true, true, 1, 1},
		{"confirmed while hidden still refreshes", true, false, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(sampleList(8)...)
			d := &fakeDialogs{confirm: tt.confirm}
			c := NewController(api, d, WithState(State{ItemsVisible: tt.visible}))

			c.DeleteItem(context.Background(), 7)

			if len(d.confirms) != 1 || d.confirms[0] != MsgConfirmDelete {
				t.Errorf("confirms = %v, want [%q]", d.confirms, MsgConfirmDelete)
			}
			if got := api.count("DELETE /items"); got != tt.wantDeletes {
				t.Errorf("DELETE count = %d, want %d", got, tt.wantDeletes)
			}
			if tt.wantDeletes == 1 && api.mutations()[0].ID != 7 {
				t.Errorf("deleted id = %d, want 7", api.mutations()[0].ID)
			}
			if got := api.count("GET /items"); got != tt.wantGets {
				t.Errorf("GET /items count = %d, want %d", got, tt.wantGets)
			}
			if c.State().ItemsVisible != tt.visible {
				t.Error("delete should not change visibility")
			}
		})
	}
}

func TestDeleteItem_Failure(t *testing.T) {
	api := newFakeAPI(sampleList(2)...)
	api.errs["DELETE /items"] = items.NewHTTPError(404, "")
	d := &fakeDialogs{confirm: true}
	c := NewController(api, d)

	c.DeleteItem(context.Background(), 1)

	if alerts := d.Alerts(); len(alerts) != 1 || alerts[0] != "Error deleting item: HTTP error! status: 404" {
		t.Errorf("alerts = %v", alerts)
	}
	if api.count("GET /items") != 0 {
		t.Error("failed delete should not refresh")
	}
}

func TestNotify(t *testing.T) {
	var mu sync.Mutex
	var events []Event
	api := newFakeAPI()
	api.errs["POST /items"] = items.NewHTTPError(500, "")

	c := NewController(api, &fakeDialogs{}, WithNotify(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	}))

	c.SetNewItemInput("Widget", "")
	c.CreateItem(context.Background())
	c.DeleteItem(context.Background(), 3)

	if len(events) != 2 {
		t.Fatalf("events = %+v, want 2", events)
	}
	if events[0].Op != OpCreateItem || !items.IsHTTPError(events[0].Err) {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[1].Op != OpDeleteItem || !events[1].Declined {
		t.Errorf("events[1] = %+v, want declined delete", events[1])
	}
}

func TestDispatch(t *testing.T) {
	api := newFakeAPI(items.Item{ID: 5, Name: "Widget"})
	d := &fakeDialogs{confirm: true}
	c := NewController(api, d)
	ctx := context.Background()

	c.Dispatch(ctx, Action{Kind: ActionEdit, ID: 5})
	if n, _ := c.Page().Node(5); n.Kind != KindEditForm {
		t.Fatalf("after edit action node = %+v", n)
	}

	c.Dispatch(ctx, Action{Kind: ActionCancel, ID: 5})
	if n, _ := c.Page().Node(5); n.Kind != KindCard {
		t.Fatalf("after cancel action node = %+v", n)
	}

	c.Dispatch(ctx, Action{Kind: ActionDelete, ID: 5})
	if api.count("DELETE /items") != 1 {
		t.Error("delete action should delete")
	}
}

func TestPageSnapshotIsCopy(t *testing.T) {
	api := newFakeAPI(items.Item{ID: 5, Name: "Widget"})
	c := NewController(api, &fakeDialogs{})
	c.BeginEdit(context.Background(), 5)

	page := c.Page()
	page.EditInputs[5] = Inputs{Name: "mutated"}
	page.Region.Nodes[0].Name = "mutated"
	*page.Count = 99

	fresh := c.Page()
	if fresh.EditInputs[5].Name != "Widget" || fresh.Region.Nodes[0].Name != "Widget" || *fresh.Count != 1 {
		t.Errorf("snapshot mutation leaked into controller: %+v", fresh)
	}
}

func TestConcurrentOperations(t *testing.T) {
	api := newFakeAPI(sampleList(5)...)
	c := NewController(api, &fakeDialogs{confirm: true})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); c.RefreshList(ctx) }()
		go func() { defer wg.Done(); c.FetchGreeting(ctx) }()
		go func() { defer wg.Done(); c.SetNewItemInput("n", "d"); _ = c.Page() }()
	}
	wg.Wait()

	if got := c.Page().Count; got == nil || *got != 5 {
		t.Errorf("Count = %v, want 5", got)
	}
}
