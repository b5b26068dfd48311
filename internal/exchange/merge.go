package exchange

import (
	"github.com/gigcal/gigcal/internal/models"
	"github.com/gigcal/gigcal/internal/storage"
)

// importKey identifies an imported record for collision purposes. JSON
// exports carry IDs and collide per event; CSV rows carry no ID and collide
// per date, so a date-keyed import replaces whatever that date held.
func importKey(e models.Event) string {
	if e.ID != "" {
		return "id:" + e.ID
	}
	return "date:" + e.Date
}

// Dedupe collapses an import batch by key, last occurrence wins.
func Dedupe(events []models.Event) []models.Event {
	index := make(map[string]int, len(events))
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		key := importKey(e)
		if i, ok := index[key]; ok {
			out[i] = e
			continue
		}
		index[key] = len(out)
		out = append(out, e)
	}
	return out
}

// Combine applies the import policy. Merge mode unions imported events with
// the existing set, imported winning on key collision; overwrite mode
// discards the existing set. The result is sorted by date ascending.
func Combine(existing, imported []models.Event, mode Mode) []models.Event {
	imported = Dedupe(imported)

	var out []models.Event
	if mode == ModeMerge {
		dates := make(map[string]bool, len(imported))
		ids := make(map[string]bool, len(imported))
		for _, e := range imported {
			if e.ID != "" {
				ids[e.ID] = true
			} else {
				dates[e.Date] = true
			}
		}
		for _, e := range existing {
			if ids[e.ID] || dates[e.Date] {
				continue
			}
			out = append(out, e)
		}
	}
	out = append(out, imported...)
	storage.SortEvents(out)
	return out
}
