package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

// eventForm holds the transient form values for creating or editing one
// event on a date.
type eventForm struct {
	Name  string
	Types []string
	Place string
	City  string
	Color string
}

func formFromEvent(e models.Event) *eventForm {
	color := e.Color
	if color == "" {
		color = constants.Palette[0]
	}
	return &eventForm{
		Name:  e.Name,
		Types: append([]string(nil), e.Types...),
		Place: e.Place,
		City:  e.City,
		Color: color,
	}
}

func (f *eventForm) apply(e models.Event, date string) models.Event {
	e.Date = date
	e.Name = strings.TrimSpace(f.Name)
	e.Types = f.Types
	e.Place = strings.TrimSpace(f.Place)
	e.City = strings.TrimSpace(f.City)
	e.Color = f.Color
	return e
}

// tagForm holds the transient values of the vocabulary editor.
type tagForm struct {
	Category string
	Color    string
	NewPlace string
	NewCity  string
}

// newTagForm builds the vocabulary editor: recolor one fixed category and
// optionally append a venue or city name.
func newTagForm(data *tagForm, tags models.TagConfig) *huh.Form {
	categoryOptions := make([]huh.Option[string], 0, len(constants.Categories))
	for _, c := range constants.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(fmt.Sprintf("%s (%s)", c, tags.Type[c]), c))
	}

	colorOptions := make([]huh.Option[string], 0, len(constants.Palette))
	for _, c := range constants.Palette {
		colorOptions = append(colorOptions, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("类别").
				Options(categoryOptions...).
				Value(&data.Category),
			huh.NewSelect[string]().
				Title("颜色").
				Options(colorOptions...).
				Value(&data.Color),
			huh.NewInput().
				Title("新增地点").
				Placeholder("留空跳过").
				Value(&data.NewPlace),
			huh.NewInput().
				Title("新增城市").
				Placeholder("留空跳过").
				Value(&data.NewCity),
		),
	)
}

// newEventForm builds the edit form. Venue and city inputs suggest from the
// tag vocabulary; the color select offers the preset palette.
func newEventForm(data *eventForm, tags models.TagConfig) *huh.Form {
	colorOptions := make([]huh.Option[string], 0, len(constants.Palette)+1)
	seen := false
	for _, c := range constants.Palette {
		if c == data.Color {
			seen = true
		}
		colorOptions = append(colorOptions, huh.NewOption(c, c))
	}
	if !seen && data.Color != "" {
		colorOptions = append(colorOptions, huh.NewOption(data.Color, data.Color))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("事件名称").
				Value(&data.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name must not be empty")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("类型").
				Options(huh.NewOptions(constants.Categories...)...).
				Value(&data.Types),
			huh.NewInput().
				Title("地点").
				Value(&data.Place).
				Suggestions(tags.Place),
			huh.NewInput().
				Title("城市").
				Value(&data.City).
				Suggestions(tags.City),
			huh.NewSelect[string]().
				Title("颜色").
				Options(colorOptions...).
				Value(&data.Color),
		),
	)
}
