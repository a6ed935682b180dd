package items

import (
	"fmt"
	"strconv"
	"strings"
)

// MsgNameRequired is shown when an item is submitted without a name
const MsgNameRequired = "Item name is required!"

// ValidateName validates an item name. Only the empty string is rejected;
// whitespace-only names are sent as typed.
func ValidateName(name string) error {
	if name == "" {
		return NewValidationError(MsgNameRequired)
	}
	return nil
}

// ValidateInput validates a create/update body before any request is sent
func ValidateInput(in Input) error {
	return ValidateName(in.Name)
}

// ValidateID validates a server-assigned item id.
// Ids are positive integers.
func ValidateID(id int) error {
	if id <= 0 {
		return NewValidationError(fmt.Sprintf("item id must be a positive integer, got %d", id))
	}
	return nil
}

// ParseID parses and validates an item id given on the command line
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("invalid item id %q", s))
	}
	if err := ValidateID(id); err != nil {
		return 0, err
	}
	return id, nil
}
