package storage

import (
	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

// DefaultTags returns the built-in tag vocabulary: the four fixed categories
// with their default colors plus the seed place and city lists.
func DefaultTags() models.TagConfig {
	tags := models.TagConfig{
		Type:  make(map[string]string, len(constants.Categories)),
		Place: append([]string(nil), constants.DefaultPlaces...),
		City:  append([]string(nil), constants.DefaultCities...),
	}
	for _, c := range constants.Categories {
		tags.Type[c] = constants.DefaultCategoryColors[c]
	}
	return tags
}

// DefaultSettings returns the built-in settings record.
func DefaultSettings() models.Settings {
	return models.Settings{
		Font:          constants.DefaultFont,
		MenuCollapsed: false,
		Version:       constants.Version,
	}
}

// MergeTagsWithDefaults overlays a stored, possibly partial TagConfig on the
// defaults. Semantics are top-level replace: a stored category map or list
// replaces the default wholesale, it is never deep-merged. The four fixed
// category keys are always restored afterwards so they can never go missing.
func MergeTagsWithDefaults(stored models.TagConfig, defaults models.TagConfig) models.TagConfig {
	merged := defaults.Clone()
	if stored.Type != nil {
		merged.Type = make(map[string]string, len(stored.Type))
		for k, v := range stored.Type {
			merged.Type[k] = v
		}
	}
	if stored.Place != nil {
		merged.Place = append([]string(nil), stored.Place...)
	}
	if stored.City != nil {
		merged.City = append([]string(nil), stored.City...)
	}
	for _, c := range constants.Categories {
		if _, ok := merged.Type[c]; !ok {
			merged.Type[c] = defaults.Type[c]
		}
	}
	return merged
}

// MergeSettingsWithDefaults fills zero-valued settings fields from the
// defaults. MenuCollapsed is a plain boolean and is taken as stored.
func MergeSettingsWithDefaults(stored models.Settings, defaults models.Settings) models.Settings {
	merged := stored
	if merged.Font == "" {
		merged.Font = defaults.Font
	}
	if merged.Version == "" {
		merged.Version = defaults.Version
	}
	return merged
}
