package cli

import (
	"fmt"
	"strings"

	"github.com/gigcal/gigcal/internal/config"
	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
	"github.com/gigcal/gigcal/internal/storage"
)

// Context is passed to every command by kong.
type Context struct {
	Store      *storage.Store
	DataDir    string
	ConfigPath string
	Config     config.Config
}

// ParseTypes parses a comma-separated category list, rejecting labels
// outside the fixed vocabulary. An empty string is a valid empty set.
func ParseTypes(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}, nil
	}
	var types []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !constants.IsCategory(part) {
			return nil, fmt.Errorf("unknown category %q (expected one of %s)", part, strings.Join(constants.Categories, ", "))
		}
		types = append(types, part)
	}
	return types, nil
}

// FormatEvent renders an event as a one-line listing entry.
func FormatEvent(e models.Event) string {
	parts := []string{e.Date, e.Name}
	if len(e.Types) > 0 {
		parts = append(parts, "["+strings.Join(e.Types, constants.TypeSeparator)+"]")
	}
	if e.Place != "" {
		parts = append(parts, "@ "+e.Place)
	}
	if e.City != "" {
		parts = append(parts, e.City)
	}
	return strings.Join(parts, "  ")
}
