// Package calendar provides pure month-grid computations. Months are
// zero-based (0=January) inside this package; external surfaces convert at
// the boundary.
package calendar

import (
	"fmt"
	"time"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

// GridSize is the fixed cell count of a month grid: 6 rows of 7 columns.
const GridSize = 42

// DayCell is one cell of a month grid. Month and Year describe the cell's
// own month, which differs from the requested month for overflow cells.
type DayCell struct {
	Day            int
	Month          int // zero-based
	Year           int
	Date           string // YYYY-MM-DD
	IsCurrentMonth bool
	IsToday        bool
	Events         []models.Event
}

// DaysInMonth returns the number of days in the zero-based month, using the
// host calendar so leap years are handled.
func DaysInMonth(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the Monday-based weekday index (Monday=0, Sunday=6)
// of the first day of the zero-based month.
func FirstWeekday(year, month int) int {
	wd := int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}

// PrevMonth returns the zero-based month preceding (year, month).
func PrevMonth(year, month int) (int, int) {
	if month == 0 {
		return year - 1, 11
	}
	return year, month - 1
}

// NextMonth returns the zero-based month following (year, month).
func NextMonth(year, month int) (int, int) {
	if month == 11 {
		return year + 1, 0
	}
	return year, month + 1
}

// FormatDate renders (year, zero-based month, day) as YYYY-MM-DD.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
}

// ParseDate parses a YYYY-MM-DD string into year, zero-based month and day.
// It rejects both malformed strings and impossible calendar dates.
func ParseDate(date string) (year, month, day int, err error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Year(), int(t.Month()) - 1, t.Day(), nil
}

// IsValidDate reports whether date is a well-formed, real calendar date.
func IsValidDate(date string) bool {
	_, _, _, err := ParseDate(date)
	return err == nil
}

// MonthsInRange returns every YYYY-MM month from start to end inclusive.
// An empty slice is returned when start sorts after end.
func MonthsInRange(start, end string) []string {
	st, err := time.Parse(constants.MonthFormat, start)
	if err != nil {
		return nil
	}
	et, err := time.Parse(constants.MonthFormat, end)
	if err != nil {
		return nil
	}

	var months []string
	for !st.After(et) {
		months = append(months, st.Format(constants.MonthFormat))
		st = st.AddDate(0, 1, 0)
	}
	return months
}

// MonthGrid computes the 42-cell grid for the zero-based month, weeks
// starting Monday. Leading cells come from the previous month, trailing
// cells from the following month. The caller supplies today so the function
// stays clock-free.
func MonthGrid(year, month int, events []models.Event, today time.Time) []DayCell {
	byDate := make(map[string][]models.Event, len(events))
	for _, e := range events {
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	todayStr := today.Format(constants.DateFormat)

	cells := make([]DayCell, 0, GridSize)
	appendCell := func(y, m, d int, current bool) {
		date := FormatDate(y, m, d)
		cells = append(cells, DayCell{
			Day:            d,
			Month:          m,
			Year:           y,
			Date:           date,
			IsCurrentMonth: current,
			IsToday:        date == todayStr,
			Events:         byDate[date],
		})
	}

	prevYear, prevMonth := PrevMonth(year, month)
	daysInPrev := DaysInMonth(prevYear, prevMonth)
	for i := FirstWeekday(year, month) - 1; i >= 0; i-- {
		appendCell(prevYear, prevMonth, daysInPrev-i, false)
	}

	for d := 1; d <= DaysInMonth(year, month); d++ {
		appendCell(year, month, d, true)
	}

	nextYear, nextMonth := NextMonth(year, month)
	for d := 1; len(cells) < GridSize; d++ {
		appendCell(nextYear, nextMonth, d, false)
	}

	return cells
}
