// Package tui is the interactive month-grid calendar. All state flows
// through the controller; the model keeps only transient snapshots and
// rebuilds the grid after every mutation.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/gigcal/gigcal/internal/calendar"
	"github.com/gigcal/gigcal/internal/controller"
	"github.com/gigcal/gigcal/internal/models"
)

type sessionState int

const (
	stateCalendar sessionState = iota
	stateForm
	stateConfirmDelete
	stateTags
)

type Model struct {
	ctrl   *controller.Controller
	grid   []calendar.DayCell
	cursor int
	state  sessionState
	keys   KeyMap
	help   help.Model

	form     *huh.Form
	formData *eventForm
	editing  *models.Event // nil while creating
	deleting *models.Event
	tagsData *tagForm

	width    int
	height   int
	status   string
	errMsg   string
	quitting bool
}

// NewModel builds the initial model with the cursor on today, or on the 1st
// when today is outside the displayed month.
func NewModel(ctrl *controller.Controller) (Model, error) {
	grid, err := ctrl.Grid()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		ctrl:   ctrl,
		grid:   grid,
		cursor: initialCursor(grid),
		state:  stateCalendar,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	return m, nil
}

func initialCursor(grid []calendar.DayCell) int {
	for i, cell := range grid {
		if cell.IsToday {
			return i
		}
	}
	for i, cell := range grid {
		if cell.IsCurrentMonth {
			return i
		}
	}
	return 0
}

// refresh rebuilds the grid snapshot from the store.
func (m *Model) refresh() {
	grid, err := m.ctrl.Grid()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.grid = grid
	if m.cursor >= len(m.grid) {
		m.cursor = len(m.grid) - 1
	}
}

func (m *Model) selectedCell() calendar.DayCell {
	if m.cursor < 0 || m.cursor >= len(m.grid) {
		return calendar.DayCell{}
	}
	return m.grid[m.cursor]
}
