package models

// Settings represents application-wide settings persisted alongside the
// event data.
type Settings struct {
	Font          string `json:"font"`          // font identifier or "system"
	MenuCollapsed bool   `json:"menuCollapsed"` // UI state, informational
	Version       string `json:"version"`       // semantic version, informational
}
