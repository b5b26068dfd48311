package models

// Event is a single calendar entry. Events are keyed by ID; a date may carry
// any number of independent events.
type Event struct {
	ID    string   `json:"id,omitempty"`
	Date  string   `json:"date"` // YYYY-MM-DD
	Types []string `json:"type"` // subset of the fixed category vocabulary
	Name  string   `json:"name"`
	Place string   `json:"place,omitempty"`
	City  string   `json:"city,omitempty"`
	Color string   `json:"color,omitempty"` // #RRGGBB
}

// Month returns the YYYY-MM prefix of the event date.
func (e Event) Month() string {
	if len(e.Date) < 7 {
		return e.Date
	}
	return e.Date[:7]
}

// HasType reports whether the event carries the given category.
func (e Event) HasType(name string) bool {
	for _, t := range e.Types {
		if t == name {
			return true
		}
	}
	return false
}
