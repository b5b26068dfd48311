package exchange

import (
	"fmt"

	"github.com/gigcal/gigcal/internal/logger"
	"github.com/gigcal/gigcal/internal/models"
	"github.com/gigcal/gigcal/internal/storage"
	"github.com/gigcal/gigcal/internal/validation"
)

// ImportOptions configures an import run.
type ImportOptions struct {
	Mode Mode
	// Strict rejects the whole batch when any row fails validation instead
	// of skipping the offending rows.
	Strict bool
}

// ImportSummary reports the outcome of an import.
type ImportSummary struct {
	Imported int
	Skipped  int
	Errors   []string // one human-readable message per offending row
}

func (s ImportSummary) String() string {
	return fmt.Sprintf("%d imported, %d skipped", s.Imported, s.Skipped)
}

// Import runs the full pipeline against raw file content: parse by format,
// validate row by row, combine with the store per mode, persist. Parse
// failures abort with an error and nothing is written; validation failures
// only abort in strict mode.
func Import(store *storage.Store, format Format, data []byte, opts ImportOptions) (ImportSummary, error) {
	var (
		candidates []models.Event
		err        error
	)
	switch format {
	case FormatCSV:
		candidates, err = ImportCSV(data)
	case FormatJSON:
		candidates, err = ImportJSON(data)
	default:
		return ImportSummary{}, fmt.Errorf("%w: cannot import %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return ImportSummary{}, err
	}

	result := validation.CheckBatch(candidates, false)
	summary := ImportSummary{
		Imported: len(result.Valid),
		Skipped:  result.Skipped,
		Errors:   result.Errors,
	}

	if opts.Strict && result.HasErrors() {
		summary.Imported = 0
		return summary, fmt.Errorf("import rejected, %d of %d rows failed validation", result.Skipped, len(candidates))
	}
	if len(result.Valid) == 0 {
		return summary, ErrNoEvents
	}

	existing, err := store.GetAllEvents()
	if err != nil {
		return summary, err
	}
	combined := Combine(existing, result.Valid, opts.Mode)
	if err := store.ReplaceEvents(combined); err != nil {
		return summary, err
	}

	logger.Info("Import completed", "mode", opts.Mode, "imported", summary.Imported, "skipped", summary.Skipped)
	return summary, nil
}
