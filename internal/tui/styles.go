package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Width(cellWidth)

	otherMonthStyle = cellStyle.
			Foreground(lipgloss.Color("240"))

	todayStyle = cellStyle.
			Foreground(lipgloss.Color("205")).
			Bold(true)

	cursorStyle = cellStyle.
			Reverse(true)

	eventMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
