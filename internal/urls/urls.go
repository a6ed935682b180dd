package urls

import "strconv"

// LocalAPIBase is the API base used when the page host is "localhost".
// The development backend listens on the loopback address on port 5000.
const LocalAPIBase = "http://localhost:5000/api"

// APIPrefix is appended to the page origin for every non-local host.
const APIPrefix = "/api"

// Routes relative to the API base.
const (
	// Greeting returns a plain-text message.
	Greeting = "/hii"

	// Items lists (GET) or creates (POST) items.
	Items = "/items"
)

// Health is served at the origin root, not under the API base.
const Health = "/health"

// Item returns the route for a single item (GET, PUT, DELETE).
func Item(id int) string {
	return Items + "/" + strconv.Itoa(id)
}

// Route describes one endpoint of the HTTP contract.
type Route struct {
	Method      string
	Path        string
	Request     string
	Response    string
	Description string
}

// Contract lists the endpoints the client uses, in documentation order.
var Contract = []Route{
	{Method: "GET", Path: Greeting, Response: "text body (message)", Description: "Returns a simple greeting message"},
	{Method: "GET", Path: Items, Response: "array of {id, name, description}", Description: "Get all items"},
	{Method: "POST", Path: Items, Request: "{name, description}", Response: "created item", Description: "Create a new item"},
	{Method: "GET", Path: Items + "/{id}", Response: "{id, name, description}", Description: "Get a specific item by ID"},
	{Method: "PUT", Path: Items + "/{id}", Request: "{name, description}", Response: "updated item", Description: "Update an existing item"},
	{Method: "DELETE", Path: Items + "/{id}", Response: "confirmation message", Description: "Delete an item by ID"},
}
