// Package testutil provides an in-memory stand-in for the items API.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

// Request is one request observed by APIServer
type Request struct {
	Method string
	Path   string
	Body   map[string]any // decoded JSON body, nil when absent
}

// Item mirrors the wire shape of an item
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// APIServer is a fake items API backed by an ordered in-memory list.
// Routes: GET /api/hii, GET|POST /api/items, GET|PUT|DELETE /api/items/{id},
// GET /health.
type APIServer struct {
	*httptest.Server

	mu       sync.Mutex
	items    []Item
	nextID   int
	requests []Request
	failures map[string]int // "METHOD /path" -> status
	greeting string
}

// NewAPIServer starts a fake API seeded with items, in the given order.
// The server is closed when the test ends.
func NewAPIServer(t testing.TB, seed ...Item) *APIServer {
	t.Helper()

	s := &APIServer{
		failures: make(map[string]int),
		greeting: "hii!",
		nextID:   1,
	}
	for _, it := range seed {
		s.items = append(s.items, it)
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hii", s.handleGreeting)
	mux.HandleFunc("GET /api/items", s.handleList)
	mux.HandleFunc("POST /api/items", s.handleCreate)
	mux.HandleFunc("GET /api/items/{id}", s.handleGet)
	mux.HandleFunc("PUT /api/items/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /api/items/{id}", s.handleDelete)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// APIBase returns the base URL clients should use
func (s *APIServer) APIBase() string {
	return s.URL + "/api"
}

// SetGreeting changes the /api/hii body
func (s *APIServer) SetGreeting(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.greeting = text
}

// Fail makes every request matching method and path answer with status until
// cleared with Fail(method, path, 0). Path includes the /api prefix.
func (s *APIServer) Fail(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	if status == 0 {
		delete(s.failures, key)
		return
	}
	s.failures[key] = status
}

// Items returns a copy of the stored items in order
func (s *APIServer) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

// Requests returns a copy of every request seen so far
func (s *APIServer) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many requests matched method (and path, when non-empty)
func (s *APIServer) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && (path == "" || r.Path == path) {
			n++
		}
	}
	return n
}

// Mutations returns the requests that were not GETs
func (s *APIServer) Mutations() []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method != http.MethodGet {
			out = append(out, r)
		}
	}
	return out
}

// Reset forgets recorded requests
func (s *APIServer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *APIServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{Method: r.Method, Path: r.URL.Path}
		if r.Body != nil {
			data, _ := io.ReadAll(r.Body)
			if len(data) > 0 {
				var body map[string]any
				if err := json.Unmarshal(data, &body); err == nil {
					req.Body = body
				}
			}
			r.Body = io.NopCloser(bytes.NewReader(data))
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		status, failing := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if failing {
			writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *APIServer) handleGreeting(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	text := s.greeting
	s.mu.Unlock()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text)
}

func (s *APIServer) handleList(w http.ResponseWriter, r *http.Request) {
	list := s.Items()
	if list == nil {
		list = []Item{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *APIServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Name is required"})
		return
	}

	s.mu.Lock()
	item := Item{ID: s.nextID, Name: in.Name, Description: in.Description}
	s.nextID++
	s.items = append(s.items, item)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, item)
}

func (s *APIServer) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(r.PathValue("id"))
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
		return
	}
	writeJSON(w, http.StatusOK, s.items[idx])
}

func (s *APIServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var in map[string]*string
	_ = json.NewDecoder(r.Body).Decode(&in)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(r.PathValue("id"))
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
		return
	}
	if v := in["name"]; v != nil {
		s.items[idx].Name = *v
	}
	if v := in["description"]; v != nil {
		s.items[idx].Description = *v
	}
	writeJSON(w, http.StatusOK, s.items[idx])
}

func (s *APIServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(r.PathValue("id"))
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

func (s *APIServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"service":       "Flask API",
		"timestamp":     1700000000.0,
		"uptime":        42.5,
		"database":      "healthy",
		"database_type": "PostgreSQL",
	})
}

// indexOf must be called with mu held
func (s *APIServer) indexOf(raw string) int {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
