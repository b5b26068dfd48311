package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gigcal/gigcal/internal/calendar"
)

const (
	cellWidth = 12
	gridCols  = 7
	nameRunes = 4
)

var weekdays = []string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// RenderMonth renders a 42-cell grid with a Monday-first weekday header.
// cursor is the highlighted cell index, or -1 for none.
func RenderMonth(title string, cells []calendar.DayCell, cursor int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	header := make([]string, gridCols)
	for i, wd := range weekdays {
		header[i] = weekdayStyle.Width(cellWidth).Render(wd)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for row := 0; row < len(cells)/gridCols; row++ {
		rendered := make([]string, gridCols)
		for col := 0; col < gridCols; col++ {
			i := row*gridCols + col
			rendered[col] = renderCell(cells[i], i == cursor)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(cell calendar.DayCell, selected bool) string {
	style := cellStyle
	switch {
	case selected:
		style = cursorStyle
	case cell.IsToday:
		style = todayStyle
	case !cell.IsCurrentMonth:
		style = otherMonthStyle
	}

	day := fmt.Sprintf("%2d", cell.Day)
	mark := ""
	if n := len(cell.Events); n == 1 {
		mark = " " + eventMarkStyle.Render(truncate(cell.Events[0].Name, nameRunes))
	} else if n > 1 {
		mark = " " + eventMarkStyle.Render(fmt.Sprintf("%d events", n))
	}
	return style.Render(day + mark)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
