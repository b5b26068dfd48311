package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.help.Width = size.Width
	}

	switch m.state {
	case stateForm:
		return m.updateForm(msg)
	case stateConfirmDelete:
		return m.updateConfirm(msg)
	case stateTags:
		return m.updateTags(msg)
	default:
		return m.updateCalendar(msg)
	}
}

func (m Model) updateCalendar(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""
	m.errMsg = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.cursor < len(m.grid)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor >= gridCols {
			m.cursor -= gridCols
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.grid)-gridCols {
			m.cursor += gridCols
		}

	case key.Matches(keyMsg, m.keys.PrevMonth):
		m.ctrl.PrevMonth()
		m.refresh()
		m.cursor = initialCursor(m.grid)
	case key.Matches(keyMsg, m.keys.NextMonth):
		m.ctrl.NextMonth()
		m.refresh()
		m.cursor = initialCursor(m.grid)
	case key.Matches(keyMsg, m.keys.Today):
		m.ctrl.GoToToday()
		m.refresh()
		m.cursor = initialCursor(m.grid)

	case key.Matches(keyMsg, m.keys.Edit):
		cell := m.selectedCell()
		if len(cell.Events) > 0 {
			event := cell.Events[0]
			return m.openForm(cell.Date, &event)
		}
		return m.openForm(cell.Date, nil)

	case key.Matches(keyMsg, m.keys.New):
		return m.openForm(m.selectedCell().Date, nil)

	case key.Matches(keyMsg, m.keys.Tags):
		return m.openTagForm()

	case key.Matches(keyMsg, m.keys.Delete):
		cell := m.selectedCell()
		if len(cell.Events) == 0 {
			m.status = "No event on " + cell.Date
			return m, nil
		}
		event := cell.Events[0]
		m.deleting = &event
		m.state = stateConfirmDelete
	}

	return m, nil
}

// openForm switches into the edit form for a date. A nil event means
// creating a new one.
func (m Model) openForm(date string, event *models.Event) (tea.Model, tea.Cmd) {
	editor, err := m.ctrl.OpenEditor(date)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	base := models.Event{Date: date}
	if event != nil {
		base = *event
	}
	m.editing = event
	m.formData = formFromEvent(base)
	m.form = newEventForm(m.formData, editor.Tags)
	m.state = stateForm
	return m, m.form.Init()
}

// openTagForm switches into the vocabulary editor.
func (m Model) openTagForm() (tea.Model, tea.Cmd) {
	tags, err := m.ctrl.Tags()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.tagsData = &tagForm{
		Category: constants.Categories[0],
		Color:    tags.Type[constants.Categories[0]],
	}
	m.form = newTagForm(m.tagsData, tags)
	m.state = stateTags
	return m, m.form.Init()
}

func (m Model) updateTags(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = stateCalendar
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		data := m.tagsData
		if err := m.ctrl.SetCategoryColor(data.Category, data.Color); err != nil {
			m.errMsg = err.Error()
		}
		if name := strings.TrimSpace(data.NewPlace); name != "" {
			if err := m.ctrl.AddPlace(name); err != nil {
				m.errMsg = err.Error()
			}
		}
		if name := strings.TrimSpace(data.NewCity); name != "" {
			if err := m.ctrl.AddCity(name); err != nil {
				m.errMsg = err.Error()
			}
		}
		if m.errMsg == "" {
			m.status = "Tag vocabulary updated"
		}
		m.state = stateCalendar
		m.form = nil
		m.tagsData = nil
		m.refresh()
	} else if m.form.State == huh.StateAborted {
		m.state = stateCalendar
		m.form = nil
		m.tagsData = nil
	}

	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = stateCalendar
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		base := models.Event{}
		if m.editing != nil {
			base = *m.editing
		}
		event := m.formData.apply(base, m.selectedCell().Date)
		saved, err := m.ctrl.SaveEvent(event)
		if err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = fmt.Sprintf("Saved %q on %s", saved.Name, saved.Date)
		}
		m.state = stateCalendar
		m.form = nil
		m.editing = nil
		m.refresh()
	} else if m.form.State == huh.StateAborted {
		m.state = stateCalendar
		m.form = nil
		m.editing = nil
	}

	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if m.deleting != nil {
			if err := m.ctrl.DeleteEvent(m.deleting.ID); err != nil {
				m.errMsg = err.Error()
			} else {
				m.status = fmt.Sprintf("Deleted %q", m.deleting.Name)
			}
		}
		m.deleting = nil
		m.state = stateCalendar
		m.refresh()
	case "n", "N", "esc":
		m.deleting = nil
		m.state = stateCalendar
	}
	return m, nil
}
