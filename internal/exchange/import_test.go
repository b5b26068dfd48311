package exchange

import (
	"errors"
	"strings"
	"testing"

	"github.com/gigcal/gigcal/internal/models"
	"github.com/gigcal/gigcal/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store := storage.NewStore(storage.NewMemKV())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestImportSkipsInvalidRows(t *testing.T) {
	store := newTestStore(t)

	// Row 2 has a malformed date and must be skipped, not abort the batch.
	input := "日期,事件名称,类型,地点,城市,颜色\n" +
		"2024-05-01,好事件一,Live,,,\n" +
		"05/02/2024,坏日期,Live,,,\n" +
		"2024-05-03,好事件二,Live,,,"

	summary, err := Import(store, FormatCSV, []byte(input), ImportOptions{Mode: ModeMerge})
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if summary.Imported != 2 || summary.Skipped != 1 {
		t.Errorf("summary = %s, want 2 imported, 1 skipped", summary)
	}
	if len(summary.Errors) != 1 || !strings.Contains(summary.Errors[0], "row 2") {
		t.Errorf("errors = %v, want one row 2 message", summary.Errors)
	}

	events, err := store.GetAllEvents()
	if err != nil {
		t.Fatalf("GetAllEvents returned error: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("store holds %d events, want 2", len(events))
	}
}

func TestImportStrictRejectsBatch(t *testing.T) {
	store := newTestStore(t)

	input := "日期,事件名称,类型,地点,城市,颜色\n" +
		"2024-05-01,好事件,Live,,,\n" +
		"不是日期,坏事件,Live,,,"

	summary, err := Import(store, FormatCSV, []byte(input), ImportOptions{Mode: ModeMerge, Strict: true})
	if err == nil {
		t.Fatal("strict import of invalid batch succeeded")
	}
	if summary.Imported != 0 {
		t.Errorf("strict failure reported %d imported, want 0", summary.Imported)
	}

	events, _ := store.GetAllEvents()
	if len(events) != 0 {
		t.Errorf("strict failure wrote %d events to the store", len(events))
	}
}

func TestImportMergeVsOverwrite(t *testing.T) {
	seed := func(t *testing.T) *storage.Store {
		store := newTestStore(t)
		if _, err := store.SaveEvent(models.Event{Date: "2024-01-15", Name: "已有事件"}); err != nil {
			t.Fatalf("SaveEvent returned error: %v", err)
		}
		return store
	}
	input := []byte(`[{"date": "2024-02-20", "name": "导入事件", "type": ["Live"]}]`)

	t.Run("merge keeps existing", func(t *testing.T) {
		store := seed(t)
		if _, err := Import(store, FormatJSON, input, ImportOptions{Mode: ModeMerge}); err != nil {
			t.Fatalf("Import returned error: %v", err)
		}
		events, _ := store.GetAllEvents()
		if len(events) != 2 {
			t.Errorf("merge left %d events, want 2", len(events))
		}
	})

	t.Run("overwrite replaces store", func(t *testing.T) {
		store := seed(t)
		if _, err := Import(store, FormatJSON, input, ImportOptions{Mode: ModeOverwrite}); err != nil {
			t.Fatalf("Import returned error: %v", err)
		}
		events, _ := store.GetAllEvents()
		if len(events) != 1 || events[0].Name != "导入事件" {
			t.Errorf("overwrite left %+v", events)
		}
	})
}

func TestImportAssignsIDs(t *testing.T) {
	store := newTestStore(t)

	input := "2024-05-01,无ID行,Live,,,"
	if _, err := Import(store, FormatCSV, []byte(input), ImportOptions{Mode: ModeMerge}); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	events, _ := store.GetAllEvents()
	if len(events) != 1 || events[0].ID == "" {
		t.Errorf("imported event has no ID: %+v", events)
	}
}

func TestImportAllRowsInvalid(t *testing.T) {
	store := newTestStore(t)

	input := "日期,事件名称,类型,地点,城市,颜色\n坏日期,,,,,"
	_, err := Import(store, FormatCSV, []byte(input), ImportOptions{Mode: ModeMerge})
	if !errors.Is(err, ErrNoEvents) {
		t.Errorf("error = %v, want ErrNoEvents", err)
	}
}

func TestImportParseFailureWritesNothing(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.SaveEvent(models.Event{Date: "2024-01-01", Name: "原有"}); err != nil {
		t.Fatalf("SaveEvent returned error: %v", err)
	}

	if _, err := Import(store, FormatJSON, []byte("{broken"), ImportOptions{Mode: ModeOverwrite}); err == nil {
		t.Fatal("Import of unparseable JSON succeeded")
	}
	events, _ := store.GetAllEvents()
	if len(events) != 1 || events[0].Name != "原有" {
		t.Errorf("parse failure mutated the store: %+v", events)
	}
}

func TestImportRejectsICS(t *testing.T) {
	store := newTestStore(t)
	if _, err := Import(store, FormatICS, []byte("BEGIN:VCALENDAR"), ImportOptions{Mode: ModeMerge}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDetectFormat(t *testing.T) {
	if f, err := DetectFormat("演出日历_2024-01_2024-12.CSV"); err != nil || f != FormatCSV {
		t.Errorf("DetectFormat(CSV) = (%v, %v)", f, err)
	}
	if f, err := DetectFormat("backup.json"); err != nil || f != FormatJSON {
		t.Errorf("DetectFormat(json) = (%v, %v)", f, err)
	}
	if _, err := DetectFormat("notes.txt"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("DetectFormat(txt) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExportFilename(t *testing.T) {
	r := models.MonthRange{StartMonth: "2024-01", EndMonth: "2024-12"}
	if got := ExportFilename(FormatCSV, r); got != "演出日历_2024-01_2024-12.csv" {
		t.Errorf("ExportFilename = %q", got)
	}
}
