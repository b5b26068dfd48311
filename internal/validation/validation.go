// Package validation checks candidate events against the data-model
// invariants. It is a named step of the import pipeline, independent of
// parsing, and is also used by the interactive edit form.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gigcal/gigcal/internal/calendar"
	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	colorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Result aggregates a batch validation: the events that passed and one
// human-readable error per offending row, identified by 1-based row number.
type Result struct {
	Valid   []models.Event
	Errors  []string
	Skipped int
}

// HasErrors reports whether any row failed.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Summary renders an "N imported / M skipped" style line.
func (r Result) Summary() string {
	return fmt.Sprintf("%d valid, %d skipped", len(r.Valid), r.Skipped)
}

// IsValidColor reports whether s is a #RRGGBB hex color.
func IsValidColor(s string) bool {
	return colorRe.MatchString(s)
}

// CheckEvent returns the list of invariant violations for a single event.
// With strictTypes set, unknown category labels are violations too; an empty
// category set is always valid.
func CheckEvent(e models.Event, strictTypes bool) []string {
	var problems []string

	if !dateRe.MatchString(e.Date) {
		problems = append(problems, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", e.Date))
	} else if !calendar.IsValidDate(e.Date) {
		problems = append(problems, fmt.Sprintf("date %q is not a real calendar date", e.Date))
	}

	if strings.TrimSpace(e.Name) == "" {
		problems = append(problems, "event name must not be empty")
	}

	if e.Color != "" && !IsValidColor(e.Color) {
		problems = append(problems, fmt.Sprintf("invalid color %q, expected #RRGGBB", e.Color))
	}

	if strictTypes {
		for _, t := range e.Types {
			if !constants.IsCategory(t) {
				problems = append(problems, fmt.Sprintf("unknown category %q", t))
			}
		}
	}

	return problems
}

// CheckBatch validates a batch of candidate events. Rows that fail are
// dropped and reported; row numbers are 1-based positions in the batch.
func CheckBatch(events []models.Event, strictTypes bool) Result {
	var result Result
	for i, e := range events {
		problems := CheckEvent(e, strictTypes)
		if len(problems) == 0 {
			result.Valid = append(result.Valid, e)
			continue
		}
		result.Skipped++
		for _, p := range problems {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", i+1, p))
		}
	}
	return result
}
