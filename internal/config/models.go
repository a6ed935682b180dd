package config

import "time"

// CurrentVersion is the only settings file version understood
const CurrentVersion = 1

const (
	// DefaultOrigin is the page origin used when none is configured. Its host
	// is localhost, so the API base resolves to the local backend.
	DefaultOrigin = "http://localhost:3000"

	// DefaultTimeoutSeconds is the default per-request timeout
	DefaultTimeoutSeconds = 10
)

// Settings represents the entire user configuration file.
type Settings struct {
	Version     int          `yaml:"version"`
	Server      *Server      `yaml:"server,omitempty"`
	Logging     *Logging     `yaml:"logging,omitempty"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Server describes where the items API lives.
type Server struct {
	Origin         string `yaml:"origin"`          // Page origin; API base is resolved from it
	TimeoutSeconds int    `yaml:"timeout_seconds"` // Per-request HTTP timeout
}

// Logging controls zap output. An empty level keeps logging silent.
type Logging struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
	File  string `yaml:"file,omitempty"`  // Log file (required for the interactive UI)
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	ShowItemsOnStart bool `yaml:"show_items_on_start"` // Toggle the list visible when the UI starts
	AssumeYes        bool `yaml:"assume_yes"`          // Skip delete confirmations in CLI commands
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Server: &Server{
			Origin:         DefaultOrigin,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Logging:     &Logging{},
		Preferences: &Preferences{},
	}
}

// fillDefaults initializes sections missing from a loaded file
func (s *Settings) fillDefaults() {
	if s.Server == nil {
		s.Server = &Server{}
	}
	if s.Server.Origin == "" {
		s.Server.Origin = DefaultOrigin
	}
	if s.Server.TimeoutSeconds <= 0 {
		s.Server.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if s.Logging == nil {
		s.Logging = &Logging{}
	}
	if s.Preferences == nil {
		s.Preferences = &Preferences{}
	}
}

// Timeout returns the request timeout as a duration
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.Server.TimeoutSeconds) * time.Second
}
