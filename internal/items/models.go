package items

import "encoding/json"

// Item is a named record held by the remote store. The client only ever holds
// transient copies fetched per render cycle.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UnmarshalJSON accepts a null or absent description as "".
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          int     `json:"id"`
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.ID = raw.ID
	i.Name = raw.Name
	i.Description = ""
	if raw.Description != nil {
		i.Description = *raw.Description
	}
	return nil
}

// Input is the body of POST /items and PUT /items/{id}. Both fields are always
// sent, including an empty description.
type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Health is the service health document served at /health
type Health struct {
	Status       string  `json:"status"`
	Service      string  `json:"service"`
	Timestamp    float64 `json:"timestamp"`
	Uptime       float64 `json:"uptime"`       // seconds
	Database     string  `json:"database"`     // "healthy" or "unhealthy: <reason>"
	DatabaseType string  `json:"database_type"`

	Endpoints map[string]string `json:"endpoints,omitempty"`
}

// Healthy reports whether both the service and its database are healthy
func (h *Health) Healthy() bool {
	return h.Status == "healthy" && h.Database == "healthy"
}
