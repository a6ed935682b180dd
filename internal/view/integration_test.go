package view

import (
	"context"
	"net/http"
	"testing"

	"github.com/muurk/itemctl/internal/items"
	"github.com/muurk/itemctl/internal/testutil"
)

func newLiveController(t *testing.T, d Dialogs, seed ...testutil.Item) (*Controller, *testutil.APIServer) {
	t.Helper()
	srv := testutil.NewAPIServer(t, seed...)
	client := items.NewClientWithURL(srv.APIBase())
	return NewController(client, d), srv
}

func TestLive_CreateEditDelete(t *testing.T) {
	d := &fakeDialogs{confirm: true}
	c, srv := newLiveController(t, d, testutil.Item{ID: 1, Name: "Existing"})
	ctx := context.Background()

	c.ToggleVisibility(ctx)
	if got := *c.Page().Count; got != 1 {
		t.Fatalf("Count = %d, want 1", got)
	}

	c.SetNewItemInput("Widget", "")
	c.CreateItem(ctx)
	page := c.Page()
	if *page.Count != 2 || len(page.Region.Nodes) != 2 {
		t.Fatalf("after create page = %+v, want 2 items", page)
	}
	created := page.Region.Nodes[1]
	if created.Name != "Widget" || created.Description != items.NoDescription {
		t.Errorf("created node = %+v", created)
	}

	c.BeginEdit(ctx, created.ID)
	c.SetEditInput(created.ID, "Widget v2", "now described")
	c.SaveEdit(ctx, created.ID)

	if got := srv.Items()[1]; got.Name != "Widget v2" || got.Description != "now described" {
		t.Errorf("stored item = %+v", got)
	}

	srv.Reset()
	c.DeleteItem(ctx, 1)

	if srv.Count(http.MethodDelete, "/api/items/1") != 1 {
		t.Errorf("requests = %+v, want DELETE /api/items/1", srv.Requests())
	}
	if srv.Count(http.MethodGet, "/api/items") != 1 {
		t.Errorf("requests = %+v, want one refresh after delete", srv.Requests())
	}
	if *c.Page().Count != 1 {
		t.Errorf("Count = %d, want 1", *c.Page().Count)
	}
	if alerts := d.Alerts(); len(alerts) != 1 || alerts[0] != MsgItemAdded {
		t.Errorf("alerts = %v", alerts)
	}
}

func TestLive_PutBodyIsExactlyNameAndDescription(t *testing.T) {
	c, srv := newLiveController(t, &fakeDialogs{}, testutil.Item{ID: 5, Name: "OldName", Description: "kept"})
	ctx := context.Background()

	c.BeginEdit(ctx, 5)
	in := c.Page().EditInputs[5]
	c.SetEditInput(5, "NewName", in.Description)
	c.SaveEdit(ctx, 5)

	muts := srv.Mutations()
	if len(muts) != 1 {
		t.Fatalf("mutations = %+v, want 1", muts)
	}
	m := muts[0]
	if m.Method != http.MethodPut || m.Path != "/api/items/5" {
		t.Errorf("mutation = %s %s", m.Method, m.Path)
	}
	if len(m.Body) != 2 || m.Body["name"] != "NewName" || m.Body["description"] != "kept" {
		t.Errorf("body = %v", m.Body)
	}
}

func TestLive_ServerErrorOnList(t *testing.T) {
	c, srv := newLiveController(t, &fakeDialogs{})
	srv.Fail(http.MethodGet, "/api/items", http.StatusInternalServerError)

	c.ToggleVisibility(context.Background())

	page := c.Page()
	if page.Region.Err == nil || page.Region.Err.Text != "Error loading items: HTTP error! status: 500" {
		t.Errorf("Region.Err = %+v", page.Region.Err)
	}
}

func TestLive_Greeting(t *testing.T) {
	c, srv := newLiveController(t, &fakeDialogs{})
	srv.SetGreeting("hello there")

	c.FetchGreeting(context.Background())

	if st := c.Page().Status; st == nil || st.Text != `Message from backend: "hello there"` {
		t.Errorf("Status = %+v", st)
	}
}
