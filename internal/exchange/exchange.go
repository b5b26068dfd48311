// Package exchange implements the export/import pipeline: serializing a
// filtered event collection to CSV, JSON or ICS, and parsing uploaded CSV or
// JSON back into validated events that merge into or overwrite the store.
package exchange

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

// Format identifies an export serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatICS  Format = "ics"
)

// Mode selects how imported events combine with the store.
type Mode string

const (
	// ModeMerge unions imported events with the store; imported records win
	// on key collision.
	ModeMerge Mode = "merge"
	// ModeOverwrite replaces the entire store with the imported set.
	ModeOverwrite Mode = "overwrite"
)

var (
	// ErrNoEvents is returned when an export filter matches nothing; no file
	// is produced in that case.
	ErrNoEvents = errors.New("no events in the selected range")

	// ErrUnsupportedFormat is returned for files that are neither CSV nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatICS:
		return FormatICS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ParseMode converts a user-supplied import mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeMerge:
		return ModeMerge, nil
	case ModeOverwrite:
		return ModeOverwrite, nil
	}
	return "", fmt.Errorf("invalid import mode %q (expected merge or overwrite)", s)
}

// ExportFilename builds the conventional download name for an export,
// e.g. 演出日历_2024-01_2024-12.csv.
func ExportFilename(format Format, r models.MonthRange) string {
	return fmt.Sprintf("%s_%s_%s.%s", constants.ExportFilePrefix, r.StartMonth, r.EndMonth, format)
}

// DetectFormat infers the import format from a filename extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(filename))
}
