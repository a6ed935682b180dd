package view

import (
	"fmt"

	"github.com/muurk/itemctl/internal/items"
)

// User-facing text
const (
	MsgNameRequired  = items.MsgNameRequired
	MsgItemAdded     = "Item added successfully!"
	MsgConfirmDelete = "Are you sure you want to delete this item?"

	HintGreeting = "Make sure the backend is running on port 5000"
	HintList     = "Make sure the backend is running and the database is initialized"

	LabelShowItems = "Show Items"
	LabelHideItems = "Hide Items"
)

func greetingText(text string) string {
	return fmt.Sprintf("Message from backend: \"%s\"", text)
}

func greetingFailed(err error) string {
	return "Failed to get message: " + err.Error()
}

func listFailed(err error) string {
	return "Error loading items: " + err.Error()
}

func addFailed(err error) string {
	return "Error adding item: " + err.Error()
}

func updateFailed(err error) string {
	return "Error updating item: " + err.Error()
}

func deleteFailed(err error) string {
	return "Error deleting item: " + err.Error()
}
