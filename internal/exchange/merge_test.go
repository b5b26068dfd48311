package exchange

import (
	"testing"

	"github.com/gigcal/gigcal/internal/models"
)

func TestDedupeLastWins(t *testing.T) {
	events := []models.Event{
		{ID: "a", Date: "2024-05-01", Name: "第一版"},
		{Date: "2024-05-02", Name: "无ID第一版"},
		{ID: "a", Date: "2024-05-01", Name: "第二版"},
		{Date: "2024-05-02", Name: "无ID第二版"},
	}

	out := Dedupe(events)
	if len(out) != 2 {
		t.Fatalf("got %d events after dedupe, want 2", len(out))
	}
	if out[0].Name != "第二版" {
		t.Errorf("id collision kept %q, want last occurrence", out[0].Name)
	}
	if out[1].Name != "无ID第二版" {
		t.Errorf("date collision kept %q, want last occurrence", out[1].Name)
	}
}

func TestCombineOverwrite(t *testing.T) {
	existing := []models.Event{{ID: "old", Date: "2024-01-01", Name: "旧事件"}}
	imported := []models.Event{{ID: "new", Date: "2024-02-01", Name: "新事件"}}

	out := Combine(existing, imported, ModeOverwrite)
	if len(out) != 1 || out[0].ID != "new" {
		t.Errorf("overwrite kept existing events: %+v", out)
	}
}

func TestCombineMergeByID(t *testing.T) {
	existing := []models.Event{
		{ID: "keep", Date: "2024-01-01", Name: "保留"},
		{ID: "replace", Date: "2024-02-01", Name: "旧版本"},
	}
	imported := []models.Event{
		{ID: "replace", Date: "2024-02-01", Name: "新版本"},
	}

	out := Combine(existing, imported, ModeMerge)
	if len(out) != 2 {
		t.Fatalf("got %d events, want 2", len(out))
	}
	for _, e := range out {
		if e.ID == "replace" && e.Name != "新版本" {
			t.Errorf("imported record did not win on id collision: %+v", e)
		}
	}
}

func TestCombineMergeByDate(t *testing.T) {
	// CSV rows arrive without IDs and replace whatever their date held.
	existing := []models.Event{
		{ID: "e1", Date: "2024-05-01", Name: "当天旧事件"},
		{ID: "e2", Date: "2024-05-02", Name: "别天事件"},
	}
	imported := []models.Event{
		{Date: "2024-05-01", Name: "当天新事件"},
	}

	out := Combine(existing, imported, ModeMerge)
	if len(out) != 2 {
		t.Fatalf("got %d events, want 2", len(out))
	}
	for _, e := range out {
		if e.Date == "2024-05-01" && e.Name != "当天新事件" {
			t.Errorf("date-keyed import did not replace the day: %+v", e)
		}
	}
}

func TestCombineSortsByDate(t *testing.T) {
	imported := []models.Event{
		{ID: "b", Date: "2024-06-01", Name: "后"},
		{ID: "a", Date: "2024-05-01", Name: "前"},
	}
	out := Combine(nil, imported, ModeMerge)
	if out[0].Date != "2024-05-01" || out[1].Date != "2024-06-01" {
		t.Errorf("result not sorted by date: %s, %s", out[0].Date, out[1].Date)
	}
}
