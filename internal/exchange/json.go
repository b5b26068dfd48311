package exchange

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

// Envelope is the preferred JSON export shape: the event array wrapped with
// the filter range, an export timestamp and a format version.
type Envelope struct {
	Events     []models.Event    `json:"events"`
	DateRange  models.MonthRange `json:"dateRange"`
	ExportDate string            `json:"exportDate"`
	Version    string            `json:"version"`
}

// exportDateFormat matches the ISO timestamp shape of the historical
// exports, milliseconds included.
const exportDateFormat = "2006-01-02T15:04:05.000Z"

// ExportJSON serializes events in the envelope form. The caller supplies
// now so output stays deterministic under test.
func ExportJSON(events []models.Event, r models.MonthRange, now time.Time) ([]byte, error) {
	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	env := Envelope{
		Events:     events,
		DateRange:  r,
		ExportDate: now.UTC().Format(exportDateFormat),
		Version:    "1.0.0",
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize events: %w", err)
	}
	return data, nil
}

// jsonEvent tolerates the field spellings of every historical export:
// type/types for the category list and place/location for the venue.
type jsonEvent struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Type     []string `json:"type"`
	Types    []string `json:"types"`
	Name     string   `json:"name"`
	Place    string   `json:"place"`
	Location string   `json:"location"`
	City     string   `json:"city"`
	Color    string   `json:"color"`
}

func (j jsonEvent) toEvent() models.Event {
	types := j.Type
	if len(types) == 0 {
		types = j.Types
	}
	if types == nil {
		types = []string{}
	}
	place := j.Place
	if place == "" {
		place = j.Location
	}
	color := j.Color
	if color == "" {
		color = constants.DefaultColor
	}
	return models.Event{
		ID:    j.ID,
		Date:  j.Date,
		Types: types,
		Name:  j.Name,
		Place: place,
		City:  j.City,
		Color: color,
	}
}

// ImportJSON parses JSON text into candidate events. Both the envelope form
// and a bare event array are accepted. Rows are returned unvalidated.
func ImportJSON(data []byte) ([]models.Event, error) {
	var env struct {
		Events []jsonEvent `json:"events"`
	}
	if err := json.Unmarshal(data, &env); err == nil && env.Events != nil {
		return toEvents(env.Events), nil
	}

	var bare []jsonEvent
	if err := json.Unmarshal(data, &bare); err == nil {
		return toEvents(bare), nil
	}

	return nil, fmt.Errorf("unrecognized JSON shape: expected an event array or an {\"events\": [...]} envelope")
}

func toEvents(rows []jsonEvent) []models.Event {
	events := make([]models.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toEvent())
	}
	return events
}
