package exchange

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

func TestExportJSONEnvelope(t *testing.T) {
	events := []models.Event{
		{ID: "evt-1", Date: "2024-05-01", Types: []string{"Live"}, Name: "演唱会", Place: "武道馆", City: "东京", Color: "#FF6B6B"},
	}
	r := models.MonthRange{StartMonth: "2024-01", EndMonth: "2024-12"}
	now := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	data, err := ExportJSON(events, r, now)
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		`"exportDate": "2024-06-01T10:30:00.000Z"`,
		`"startMonth": "2024-01"`,
		`"endMonth": "2024-12"`,
		`"version": "1.0.0"`,
		`"id": "evt-1"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %s\n%s", want, out)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := []models.Event{
		{ID: "evt-1", Date: "2024-05-01", Types: []string{"Live", "旅行"}, Name: "演唱会", Place: "武道馆", City: "东京", Color: "#FF6B6B"},
		{ID: "evt-2", Date: "2024-05-02", Types: []string{}, Name: "干饭日", Color: "#4ECDC4"},
	}
	r := models.MonthRange{StartMonth: "2024-05", EndMonth: "2024-05"}

	data, err := ExportJSON(original, r, time.Now())
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}
	events, err := ImportJSON(data)
	if err != nil {
		t.Fatalf("ImportJSON returned error: %v", err)
	}
	if len(events) != len(original) {
		t.Fatalf("got %d events, want %d", len(events), len(original))
	}
	for i := range original {
		if events[i].ID != original[i].ID || events[i].Name != original[i].Name || events[i].Date != original[i].Date {
			t.Errorf("event %d did not round-trip: %+v", i, events[i])
		}
		if len(events[i].Types) != len(original[i].Types) {
			t.Errorf("event %d types = %v, want %v", i, events[i].Types, original[i].Types)
		}
	}
}

func TestJSONBareArrayRoundTrip(t *testing.T) {
	original := []models.Event{
		{ID: "evt-1", Date: "2024-05-01", Types: []string{"Live"}, Name: "演唱会", Place: "武道馆", City: "东京", Color: "#FF6B6B"},
		{ID: "evt-2", Date: "2024-05-02", Types: []string{}, Name: "干饭日", Color: "#4ECDC4"},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	events, err := ImportJSON(data)
	if err != nil {
		t.Fatalf("ImportJSON returned error: %v", err)
	}
	if len(events) != len(original) {
		t.Fatalf("got %d events, want %d", len(events), len(original))
	}
	for i := range original {
		if events[i].ID != original[i].ID || events[i].Name != original[i].Name ||
			events[i].Date != original[i].Date || events[i].Place != original[i].Place {
			t.Errorf("event %d did not round-trip: %+v", i, events[i])
		}
	}
}

func TestImportJSONBareArray(t *testing.T) {
	input := `[{"date": "2024-05-01", "name": "裸数组", "types": ["Live"], "location": "旧字段场馆"}]`

	events, err := ImportJSON([]byte(input))
	if err != nil {
		t.Fatalf("ImportJSON returned error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.Name != "裸数组" {
		t.Errorf("name = %q", e.Name)
	}
	if e.Place != "旧字段场馆" {
		t.Errorf("location alias not honored: place = %q", e.Place)
	}
	if len(e.Types) != 1 || e.Types[0] != "Live" {
		t.Errorf("types alias not honored: %v", e.Types)
	}
	if e.Color != constants.DefaultColor {
		t.Errorf("missing color not defaulted: %q", e.Color)
	}
}

func TestImportJSONUnrecognizedShape(t *testing.T) {
	for _, input := range []string{`{"foo": 1}`, `"just a string"`, `not json at all`} {
		if _, err := ImportJSON([]byte(input)); err == nil {
			t.Errorf("ImportJSON(%q) succeeded, want error", input)
		}
	}
}
