package storage

import (
	"reflect"
	"testing"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(NewMemKV())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveEventAssignsIDAndColor(t *testing.T) {
	store := newTestStore(t)

	saved, err := store.SaveEvent(models.Event{Date: "2024-05-01", Name: "Live演出"})
	if err != nil {
		t.Fatalf("SaveEvent returned error: %v", err)
	}
	if saved.ID == "" {
		t.Error("SaveEvent did not assign an ID")
	}
	if saved.Color != constants.DefaultColor {
		t.Errorf("SaveEvent assigned color %q, want %q", saved.Color, constants.DefaultColor)
	}

	got, err := store.GetEvent(saved.ID)
	if err != nil {
		t.Fatalf("GetEvent returned error: %v", err)
	}
	if got.Name != "Live演出" || got.Date != "2024-05-01" {
		t.Errorf("GetEvent = %+v, want saved event back", got)
	}
}

func TestSaveEventUpsertsByID(t *testing.T) {
	store := newTestStore(t)

	saved, err := store.SaveEvent(models.Event{Date: "2024-05-01", Name: "原名"})
	if err != nil {
		t.Fatalf("SaveEvent returned error: %v", err)
	}

	saved.Name = "改名"
	saved.Date = "2024-05-02"
	if _, err := store.SaveEvent(saved); err != nil {
		t.Fatalf("second SaveEvent returned error: %v", err)
	}

	events, err := store.GetAllEvents()
	if err != nil {
		t.Fatalf("GetAllEvents returned error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events after upsert, want 1", len(events))
	}
	if events[0].Name != "改名" || events[0].Date != "2024-05-02" {
		t.Errorf("upsert did not replace fields: %+v", events[0])
	}
}

func TestMultipleEventsPerDate(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"下午场", "晚场"} {
		if _, err := store.SaveEvent(models.Event{Date: "2024-05-01", Name: name}); err != nil {
			t.Fatalf("SaveEvent(%s) returned error: %v", name, err)
		}
	}

	events, err := store.GetEventsByDate("2024-05-01")
	if err != nil {
		t.Fatalf("GetEventsByDate returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events on date, want 2", len(events))
	}
	if events[0].Name != "下午场" || events[1].Name != "晚场" {
		t.Errorf("events not sorted by name: %s, %s", events[0].Name, events[1].Name)
	}
}

func TestDeleteEvent(t *testing.T) {
	store := newTestStore(t)

	saved, err := store.SaveEvent(models.Event{Date: "2024-05-01", Name: "要删的"})
	if err != nil {
		t.Fatalf("SaveEvent returned error: %v", err)
	}
	if err := store.DeleteEvent(saved.ID); err != nil {
		t.Fatalf("DeleteEvent returned error: %v", err)
	}
	if _, err := store.GetEvent(saved.ID); err == nil {
		t.Error("GetEvent succeeded after delete")
	}

	// Deleting an absent id is a no-op.
	if err := store.DeleteEvent("no-such-id"); err != nil {
		t.Errorf("DeleteEvent of absent id returned error: %v", err)
	}
}

func TestGetEventsByDateRangeBoundaries(t *testing.T) {
	store := newTestStore(t)

	dates := []string{"2023-12-31", "2024-01-01", "2024-03-31", "2024-04-01"}
	for _, d := range dates {
		if _, err := store.SaveEvent(models.Event{Date: d, Name: "事件" + d}); err != nil {
			t.Fatalf("SaveEvent(%s) returned error: %v", d, err)
		}
	}

	events, err := store.GetEventsByDateRange("2024-01", "2024-03")
	if err != nil {
		t.Fatalf("GetEventsByDateRange returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events in range, want 2", len(events))
	}
	if events[0].Date != "2024-01-01" || events[1].Date != "2024-03-31" {
		t.Errorf("range returned wrong dates: %s, %s", events[0].Date, events[1].Date)
	}
}

func TestGetEventsByMonth(t *testing.T) {
	store := newTestStore(t)

	for _, d := range []string{"2024-04-30", "2024-05-01", "2024-05-31", "2024-06-01"} {
		if _, err := store.SaveEvent(models.Event{Date: d, Name: d}); err != nil {
			t.Fatalf("SaveEvent(%s) returned error: %v", d, err)
		}
	}

	events, err := store.GetEventsByMonth(2024, 4) // zero-based May
	if err != nil {
		t.Fatalf("GetEventsByMonth returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events in May, want 2", len(events))
	}
}

func TestMalformedEventsBlobYieldsEmpty(t *testing.T) {
	kv := NewMemKV()
	if err := kv.Write(constants.EventsKey, []byte("{not json")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	store := NewStore(kv)
	defer store.Close()

	events, err := store.GetAllEvents()
	if err != nil {
		t.Fatalf("GetAllEvents returned error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events from malformed blob, want 0", len(events))
	}

	// The store stays writable afterwards.
	if _, err := store.SaveEvent(models.Event{Date: "2024-05-01", Name: "恢复"}); err != nil {
		t.Fatalf("SaveEvent after malformed blob returned error: %v", err)
	}
}

func TestGetTagsDefaults(t *testing.T) {
	store := newTestStore(t)

	tags, err := store.GetTags()
	if err != nil {
		t.Fatalf("GetTags returned error: %v", err)
	}
	for _, c := range constants.Categories {
		if tags.Type[c] != constants.DefaultCategoryColors[c] {
			t.Errorf("category %s has color %q, want %q", c, tags.Type[c], constants.DefaultCategoryColors[c])
		}
	}
	if len(tags.Place) != len(constants.DefaultPlaces) {
		t.Errorf("got %d default places, want %d", len(tags.Place), len(constants.DefaultPlaces))
	}
	if len(tags.City) != len(constants.DefaultCities) {
		t.Errorf("got %d default cities, want %d", len(tags.City), len(constants.DefaultCities))
	}

	// Reading an empty store twice yields equal results.
	again, err := store.GetTags()
	if err != nil {
		t.Fatalf("second GetTags returned error: %v", err)
	}
	if !reflect.DeepEqual(tags, again) {
		t.Errorf("GetTags not idempotent on empty store:\n first: %+v\nsecond: %+v", tags, again)
	}
}

func TestTagVocabularyMutations(t *testing.T) {
	store := newTestStore(t)

	if err := store.AddPlace("武道馆"); err != nil {
		t.Fatalf("AddPlace returned error: %v", err)
	}
	// Duplicate and blank adds are ignored.
	if err := store.AddPlace("武道馆"); err != nil {
		t.Fatalf("duplicate AddPlace returned error: %v", err)
	}
	if err := store.AddPlace("   "); err != nil {
		t.Fatalf("blank AddPlace returned error: %v", err)
	}

	tags, err := store.GetTags()
	if err != nil {
		t.Fatalf("GetTags returned error: %v", err)
	}
	count := 0
	for _, p := range tags.Place {
		if p == "武道馆" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("武道馆 appears %d times, want 1", count)
	}

	if err := store.RemovePlace("武道馆"); err != nil {
		t.Fatalf("RemovePlace returned error: %v", err)
	}
	tags, _ = store.GetTags()
	for _, p := range tags.Place {
		if p == "武道馆" {
			t.Error("武道馆 still present after remove")
		}
	}

	if err := store.AddCity("横滨"); err != nil {
		t.Fatalf("AddCity returned error: %v", err)
	}
	tags, _ = store.GetTags()
	found := false
	for _, c := range tags.City {
		if c == "横滨" {
			found = true
		}
	}
	if !found {
		t.Error("横滨 missing after AddCity")
	}
}

func TestSetCategoryColor(t *testing.T) {
	store := newTestStore(t)

	if err := store.SetCategoryColor("Live", "#123456"); err != nil {
		t.Fatalf("SetCategoryColor returned error: %v", err)
	}
	tags, err := store.GetTags()
	if err != nil {
		t.Fatalf("GetTags returned error: %v", err)
	}
	if tags.Type["Live"] != "#123456" {
		t.Errorf("Live color = %q, want #123456", tags.Type["Live"])
	}

	// Unknown category names are silently ignored.
	if err := store.SetCategoryColor("不存在", "#abcdef"); err != nil {
		t.Fatalf("SetCategoryColor of unknown category returned error: %v", err)
	}
	tags, _ = store.GetTags()
	if _, ok := tags.Type["不存在"]; ok {
		t.Error("unknown category was added to the vocabulary")
	}
}

func TestResetTags(t *testing.T) {
	store := newTestStore(t)

	if err := store.AddPlace("临时场馆"); err != nil {
		t.Fatalf("AddPlace returned error: %v", err)
	}
	if err := store.SetCategoryColor("干饭", "#000000"); err != nil {
		t.Fatalf("SetCategoryColor returned error: %v", err)
	}

	if err := store.ResetTags(); err != nil {
		t.Fatalf("ResetTags returned error: %v", err)
	}
	tags, err := store.GetTags()
	if err != nil {
		t.Fatalf("GetTags returned error: %v", err)
	}
	if !reflect.DeepEqual(tags, DefaultTags()) {
		t.Errorf("tags after reset = %+v, want built-in defaults", tags)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if settings.Font != constants.DefaultFont {
		t.Errorf("default font = %q, want %q", settings.Font, constants.DefaultFont)
	}

	settings.Font = "mono"
	settings.MenuCollapsed = true
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if got.Font != "mono" || !got.MenuCollapsed {
		t.Errorf("settings did not round-trip: %+v", got)
	}
}

func TestClearAll(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveEvent(models.Event{Date: "2024-05-01", Name: "事件"}); err != nil {
		t.Fatalf("SaveEvent returned error: %v", err)
	}
	if err := store.AddPlace("武道馆"); err != nil {
		t.Fatalf("AddPlace returned error: %v", err)
	}
	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll returned error: %v", err)
	}

	events, err := store.GetAllEvents()
	if err != nil {
		t.Fatalf("GetAllEvents returned error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events after ClearAll, want 0", len(events))
	}
	tags, err := store.GetTags()
	if err != nil {
		t.Fatalf("GetTags returned error: %v", err)
	}
	for _, p := range tags.Place {
		if p == "武道馆" {
			t.Error("custom place survived ClearAll")
		}
	}
}

func TestLastWriteWinsAcrossStores(t *testing.T) {
	kv := NewMemKV()
	s1 := NewStore(kv)
	s2 := NewStore(kv)

	// s1 snapshots the collection, s2 writes, then s1 replaces the whole
	// blob from its stale snapshot. s2's event is lost; that is the
	// documented last-write-wins behavior of blob storage.
	snapshot, err := s1.GetAllEvents()
	if err != nil {
		t.Fatalf("GetAllEvents returned error: %v", err)
	}
	if _, err := s2.SaveEvent(models.Event{Date: "2024-05-01", Name: "来自s2"}); err != nil {
		t.Fatalf("SaveEvent returned error: %v", err)
	}
	snapshot = append(snapshot, models.Event{ID: "s1-event", Date: "2024-05-02", Name: "来自s1"})
	if err := s1.ReplaceEvents(snapshot); err != nil {
		t.Fatalf("ReplaceEvents returned error: %v", err)
	}

	events, err := s2.GetAllEvents()
	if err != nil {
		t.Fatalf("GetAllEvents returned error: %v", err)
	}
	if len(events) != 1 || events[0].Name != "来自s1" {
		t.Errorf("expected s1's write to win, got %+v", events)
	}
}
