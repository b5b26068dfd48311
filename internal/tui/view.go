package tui

import (
	"fmt"
	"strings"

	"github.com/gigcal/gigcal/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateForm:
		header := titleStyle.Render("编辑事件 " + m.selectedCell().Date)
		return docStyle.Render(header + "\n\n" + m.form.View())

	case stateTags:
		header := titleStyle.Render("标签设置")
		return docStyle.Render(header + "\n\n" + m.form.View())

	case stateConfirmDelete:
		prompt := fmt.Sprintf("Delete %q on %s? [y/N]", m.deleting.Name, m.deleting.Date)
		return docStyle.Render(errorStyle.Render(prompt))
	}

	var b strings.Builder
	b.WriteString(RenderMonth(m.ctrl.Title(), m.grid, m.cursor))

	cell := m.selectedCell()
	if len(cell.Events) > 0 {
		b.WriteString("\n")
		for _, e := range cell.Events {
			line := e.Name
			if len(e.Types) > 0 {
				line += "  [" + strings.Join(e.Types, constants.TypeSeparator) + "]"
			}
			if e.Place != "" {
				line += "  @ " + e.Place
			}
			if e.City != "" {
				line += "  " + e.City
			}
			b.WriteString(statusStyle.Render(line))
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}
