package models

// TagConfig is the configurable tag vocabulary: a color per fixed category
// plus freely editable venue and city name lists.
type TagConfig struct {
	Type  map[string]string `json:"type"` // category name -> color
	Place []string          `json:"place"`
	City  []string          `json:"city"`
}

// Clone returns a deep copy so callers can mutate without aliasing the store.
func (t TagConfig) Clone() TagConfig {
	out := TagConfig{
		Type:  make(map[string]string, len(t.Type)),
		Place: append([]string(nil), t.Place...),
		City:  append([]string(nil), t.City...),
	}
	for k, v := range t.Type {
		out.Type[k] = v
	}
	return out
}
