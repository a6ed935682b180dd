package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/muurk/itemctl/internal/items"
)

type call struct {
	Method string
	ID     int
	Input  items.Input
}

// fakeAPI serves a fixed list and records every call
type fakeAPI struct {
	mu       sync.Mutex
	list     []items.Item
	greeting string
	errs     map[string]error // method -> error
	calls    []call
}

func newFakeAPI(list ...items.Item) *fakeAPI {
	return &fakeAPI{list: list, greeting: "hii!", errs: map[string]error{}}
}

func (f *fakeAPI) record(c call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	return f.errs[c.Method]
}

func (f *fakeAPI) Greeting(ctx context.Context) (string, error) {
	if err := f.record(call{Method: "GET /hii"}); err != nil {
		return "", err
	}
	return f.greeting, nil
}

func (f *fakeAPI) ListItems(ctx context.Context) ([]items.Item, error) {
	if err := f.record(call{Method: "GET /items"}); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]items.Item(nil), f.list...), nil
}

func (f *fakeAPI) CreateItem(ctx context.Context, in items.Input) (*items.Item, error) {
	if err := f.record(call{Method: "POST /items", Input: in}); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	it := items.Item{ID: 100 + len(f.list), Name: in.Name, Description: in.Description}
	f.list = append(f.list, it)
	return &it, nil
}

func (f *fakeAPI) UpdateItem(ctx context.Context, id int, in items.Input) (*items.Item, error) {
	if err := f.record(call{Method: "PUT /items", ID: id, Input: in}); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		if f.list[i].ID == id {
			f.list[i].Name, f.list[i].Description = in.Name, in.Description
			it := f.list[i]
			return &it, nil
		}
	}
	return nil, items.NewHTTPError(404, "")
}

func (f *fakeAPI) DeleteItem(ctx context.Context, id int) error {
	if err := f.record(call{Method: "DELETE /items", ID: id}); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		if f.list[i].ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeAPI) count(method string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (f *fakeAPI) mutations() []call {
	var out []call
	for _, c := range f.Calls() {
		if c.Method != "GET /items" && c.Method != "GET /hii" {
			out = append(out, c)
		}
	}
	return out
}

// fakeDialogs records alerts and answers confirmations with a fixed reply
type fakeDialogs struct {
	mu       sync.Mutex
	confirm  bool
	alerts   []string
	confirms []string
}

func (d *fakeDialogs) Alert(ctx context.Context, msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alerts = append(d.alerts, msg)
}

func (d *fakeDialogs) Confirm(ctx context.Context, msg string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.confirms = append(d.confirms, msg)
	return d.confirm
}

func (d *fakeDialogs) Alerts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.alerts...)
}

func sampleList(n int) []items.Item {
	list := make([]items.Item, n)
	for i := range list {
		// descending ids so server order differs from id order
		list[i] = items.Item{ID: n - i, Name: fmt.Sprintf("item-%d", n-i)}
	}
	return list
}
