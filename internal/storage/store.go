package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/logger"
	"github.com/gigcal/gigcal/internal/models"
)

// ErrNotFound is returned when an event lookup misses.
var ErrNotFound = errors.New("event not found")

// Store is the repository over an injected KV backend. Each collection lives
// under one key as one JSON blob; every mutation reads the full blob,
// applies the change and writes the blob back. Callers therefore see atomic
// operations, but two processes sharing a backend race with last-write-wins.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// loadEvents reads the event collection. A missing or corrupt blob yields an
// empty collection, never an error: losing one read is better than wedging
// the whole application on a bad byte.
func (s *Store) loadEvents() ([]models.Event, error) {
	data, ok, err := s.kv.Read(constants.EventsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		logger.Warn("Discarding malformed event data", "error", err)
		return nil, nil
	}
	return events, nil
}

func (s *Store) saveEvents(events []models.Event) error {
	SortEvents(events)
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize events: %w", err)
	}
	return s.kv.Write(constants.EventsKey, data)
}

// GetAllEvents returns every stored event sorted by date ascending.
func (s *Store) GetAllEvents() ([]models.Event, error) {
	events, err := s.loadEvents()
	if err != nil {
		return nil, err
	}
	SortEvents(events)
	return events, nil
}

// GetEvent returns the event with the given id, or ErrNotFound.
func (s *Store) GetEvent(id string) (models.Event, error) {
	events, err := s.loadEvents()
	if err != nil {
		return models.Event{}, err
	}
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Event{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// GetEventsByDate returns the events on the given YYYY-MM-DD date.
func (s *Store) GetEventsByDate(date string) ([]models.Event, error) {
	events, err := s.loadEvents()
	if err != nil {
		return nil, err
	}
	var out []models.Event
	for _, e := range events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	SortEvents(out)
	return out, nil
}

// SaveEvent upserts by ID, assigning a fresh ID to new events.
func (s *Store) SaveEvent(event models.Event) (models.Event, error) {
	events, err := s.loadEvents()
	if err != nil {
		return models.Event{}, err
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Color == "" {
		event.Color = constants.DefaultColor
	}

	replaced := false
	for i, e := range events {
		if e.ID == event.ID {
			events[i] = event
			replaced = true
			break
		}
	}
	if !replaced {
		events = append(events, event)
	}

	return event, s.saveEvents(events)
}

// DeleteEvent removes the event with the given id. Deleting an absent id is
// a no-op, not an error.
func (s *Store) DeleteEvent(id string) error {
	events, err := s.loadEvents()
	if err != nil {
		return err
	}
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return nil
	}
	return s.saveEvents(kept)
}

// GetEventsByMonth returns the events in the zero-based (year, month).
func (s *Store) GetEventsByMonth(year, month int) ([]models.Event, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month+1)
	return s.GetEventsByDateRange(prefix, prefix)
}

// GetEventsByDateRange returns events whose month falls inside the inclusive
// [startMonth, endMonth] YYYY-MM range. Comparison is lexicographic, which
// is correct for zero-padded date strings.
func (s *Store) GetEventsByDateRange(startMonth, endMonth string) ([]models.Event, error) {
	events, err := s.loadEvents()
	if err != nil {
		return nil, err
	}
	r := models.MonthRange{StartMonth: startMonth, EndMonth: endMonth}
	var out []models.Event
	for _, e := range events {
		if r.Contains(e.Month()) {
			out = append(out, e)
		}
	}
	SortEvents(out)
	return out, nil
}

// ReplaceEvents overwrites the entire event collection.
func (s *Store) ReplaceEvents(events []models.Event) error {
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = uuid.NewString()
		}
	}
	return s.saveEvents(events)
}

// GetTags returns the tag vocabulary with defaults merged under any missing
// keys. A missing or corrupt blob yields the built-in defaults.
func (s *Store) GetTags() (models.TagConfig, error) {
	data, ok, err := s.kv.Read(constants.TagsKey)
	if err != nil {
		return models.TagConfig{}, err
	}
	if !ok {
		return DefaultTags(), nil
	}

	var stored models.TagConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		logger.Warn("Discarding malformed tag data", "error", err)
		return DefaultTags(), nil
	}
	return MergeTagsWithDefaults(stored, DefaultTags()), nil
}

// SaveTags persists the tag vocabulary.
func (s *Store) SaveTags(tags models.TagConfig) error {
	data, err := json.MarshalIndent(tags, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tags: %w", err)
	}
	return s.kv.Write(constants.TagsKey, data)
}

// SetCategoryColor recolors one of the four fixed categories. Unknown
// category names are ignored.
func (s *Store) SetCategoryColor(name, color string) error {
	if !constants.IsCategory(name) {
		return nil
	}
	tags, err := s.GetTags()
	if err != nil {
		return err
	}
	tags.Type[name] = color
	return s.SaveTags(tags)
}

// AddPlace appends a venue name to the vocabulary. Blank names and
// duplicates are ignored.
func (s *Store) AddPlace(name string) error {
	return s.addListEntry(name, func(t *models.TagConfig) *[]string { return &t.Place })
}

// RemovePlace removes every entry equal to name from the venue list.
func (s *Store) RemovePlace(name string) error {
	return s.removeListEntry(name, func(t *models.TagConfig) *[]string { return &t.Place })
}

// AddCity appends a city name to the vocabulary. Blank names and duplicates
// are ignored.
func (s *Store) AddCity(name string) error {
	return s.addListEntry(name, func(t *models.TagConfig) *[]string { return &t.City })
}

// RemoveCity removes every entry equal to name from the city list.
func (s *Store) RemoveCity(name string) error {
	return s.removeListEntry(name, func(t *models.TagConfig) *[]string { return &t.City })
}

func (s *Store) addListEntry(name string, list func(*models.TagConfig) *[]string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	tags, err := s.GetTags()
	if err != nil {
		return err
	}
	entries := list(&tags)
	for _, existing := range *entries {
		if existing == name {
			return nil
		}
	}
	*entries = append(*entries, name)
	return s.SaveTags(tags)
}

func (s *Store) removeListEntry(name string, list func(*models.TagConfig) *[]string) error {
	tags, err := s.GetTags()
	if err != nil {
		return err
	}
	entries := list(&tags)
	kept := (*entries)[:0]
	for _, existing := range *entries {
		if existing != name {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(*entries) {
		return nil
	}
	*entries = kept
	return s.SaveTags(tags)
}

// ResetTags replaces the vocabulary with the built-in defaults.
func (s *Store) ResetTags() error {
	return s.SaveTags(DefaultTags())
}

// GetSettings returns the settings record, falling back to defaults when the
// blob is missing or corrupt.
func (s *Store) GetSettings() (models.Settings, error) {
	data, ok, err := s.kv.Read(constants.SettingsKey)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return DefaultSettings(), nil
	}

	var stored models.Settings
	if err := json.Unmarshal(data, &stored); err != nil {
		logger.Warn("Discarding malformed settings data", "error", err)
		return DefaultSettings(), nil
	}
	return MergeSettingsWithDefaults(stored, DefaultSettings()), nil
}

// SaveSettings persists the settings record.
func (s *Store) SaveSettings(settings models.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	return s.kv.Write(constants.SettingsKey, data)
}

// ClearAll removes events, tags and settings.
func (s *Store) ClearAll() error {
	for _, key := range []string{constants.EventsKey, constants.TagsKey, constants.SettingsKey} {
		if err := s.kv.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// SortEvents orders events by date ascending, then name, then ID, so
// repeated exports are deterministic.
func SortEvents(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		if events[i].Name != events[j].Name {
			return events[i].Name < events[j].Name
		}
		return events[i].ID < events[j].ID
	})
}
