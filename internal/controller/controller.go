// Package controller orchestrates the store and the month grid for the UI:
// month navigation, opening the editor for a date, and save/delete. The UI
// holds only transient snapshots; the grid is rebuilt from the store after
// every mutation.
package controller

import (
	"fmt"
	"time"

	"github.com/gigcal/gigcal/internal/calendar"
	"github.com/gigcal/gigcal/internal/models"
	"github.com/gigcal/gigcal/internal/storage"
)

// Editor is the transient state handed to an edit form: the date being
// edited, the events already on it, and the tag vocabulary for suggestions.
type Editor struct {
	Date   string
	Events []models.Event
	Tags   models.TagConfig
}

type Controller struct {
	store *storage.Store
	now   func() time.Time

	year  int
	month int // zero-based
}

// New creates a controller positioned on the current month. The clock is
// injected so tests can pin "today".
func New(store *storage.Store, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &Controller{
		store: store,
		now:   now,
		year:  t.Year(),
		month: int(t.Month()) - 1,
	}
}

func (c *Controller) Year() int  { return c.year }
func (c *Controller) Month() int { return c.month }

// Title renders the displayed month, e.g. "2024年5月".
func (c *Controller) Title() string {
	return fmt.Sprintf("%d年%d月", c.year, c.month+1)
}

// SetMonth jumps directly to a zero-based (year, month).
func (c *Controller) SetMonth(year, month int) {
	c.year, c.month = year, month
}

func (c *Controller) PrevMonth() {
	c.year, c.month = calendar.PrevMonth(c.year, c.month)
}

func (c *Controller) NextMonth() {
	c.year, c.month = calendar.NextMonth(c.year, c.month)
}

// GoToToday repositions on the current month.
func (c *Controller) GoToToday() {
	t := c.now()
	c.year, c.month = t.Year(), int(t.Month())-1
}

// Grid rebuilds the 42-cell grid for the displayed month from the store.
// The grid spills into adjacent months, so it loads the full event set
// rather than a single-month filter.
func (c *Controller) Grid() ([]calendar.DayCell, error) {
	events, err := c.store.GetAllEvents()
	if err != nil {
		return nil, err
	}
	return calendar.MonthGrid(c.year, c.month, events, c.now()), nil
}

// OpenEditor gathers the editor state for a date. The date must be a real
// calendar date.
func (c *Controller) OpenEditor(date string) (Editor, error) {
	if !calendar.IsValidDate(date) {
		return Editor{}, fmt.Errorf("invalid date %q", date)
	}
	events, err := c.store.GetEventsByDate(date)
	if err != nil {
		return Editor{}, err
	}
	tags, err := c.store.GetTags()
	if err != nil {
		return Editor{}, err
	}
	return Editor{Date: date, Events: events, Tags: tags}, nil
}

// Tags returns the tag vocabulary for display and editing.
func (c *Controller) Tags() (models.TagConfig, error) {
	return c.store.GetTags()
}

// SetCategoryColor recolors a fixed category through the store.
func (c *Controller) SetCategoryColor(name, color string) error {
	return c.store.SetCategoryColor(name, color)
}

// AddPlace adds a venue name to the vocabulary through the store.
func (c *Controller) AddPlace(name string) error {
	return c.store.AddPlace(name)
}

// AddCity adds a city name to the vocabulary through the store.
func (c *Controller) AddCity(name string) error {
	return c.store.AddCity(name)
}

// SaveEvent persists an event through the store.
func (c *Controller) SaveEvent(event models.Event) (models.Event, error) {
	return c.store.SaveEvent(event)
}

// DeleteEvent removes an event through the store.
func (c *Controller) DeleteEvent(id string) error {
	return c.store.DeleteEvent(id)
}
