package storage

import (
	"testing"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

func TestMergeTagsReplacesListsWholesale(t *testing.T) {
	stored := models.TagConfig{Place: []string{"只有这个"}}
	merged := MergeTagsWithDefaults(stored, DefaultTags())

	if len(merged.Place) != 1 || merged.Place[0] != "只有这个" {
		t.Errorf("stored place list was deep-merged: %v", merged.Place)
	}
	// Untouched sections fall back to defaults.
	if len(merged.City) != len(constants.DefaultCities) {
		t.Errorf("got %d cities, want defaults (%d)", len(merged.City), len(constants.DefaultCities))
	}
}

func TestMergeTagsRestoresFixedCategories(t *testing.T) {
	stored := models.TagConfig{Type: map[string]string{"Live": "#111111"}}
	merged := MergeTagsWithDefaults(stored, DefaultTags())

	if merged.Type["Live"] != "#111111" {
		t.Errorf("stored Live color lost: %q", merged.Type["Live"])
	}
	for _, c := range constants.Categories {
		if _, ok := merged.Type[c]; !ok {
			t.Errorf("fixed category %s missing after merge", c)
		}
	}
}

func TestMergeTagsWithEmptyStored(t *testing.T) {
	merged := MergeTagsWithDefaults(models.TagConfig{}, DefaultTags())
	defaults := DefaultTags()

	if len(merged.Type) != len(defaults.Type) {
		t.Errorf("got %d categories, want %d", len(merged.Type), len(defaults.Type))
	}
	if len(merged.Place) != len(defaults.Place) || len(merged.City) != len(defaults.City) {
		t.Errorf("lists not defaulted: %d places, %d cities", len(merged.Place), len(merged.City))
	}
}

func TestMergeSettings(t *testing.T) {
	merged := MergeSettingsWithDefaults(models.Settings{MenuCollapsed: true}, DefaultSettings())
	if merged.Font != constants.DefaultFont {
		t.Errorf("font = %q, want default", merged.Font)
	}
	if !merged.MenuCollapsed {
		t.Error("MenuCollapsed lost in merge")
	}
	if merged.Version != constants.Version {
		t.Errorf("version = %q, want %q", merged.Version, constants.Version)
	}
}
