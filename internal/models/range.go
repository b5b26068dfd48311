package models

// MonthRange is an inclusive YYYY-MM month interval used by export filters.
type MonthRange struct {
	StartMonth string `json:"startMonth"`
	EndMonth   string `json:"endMonth"`
}

// Contains reports whether the YYYY-MM month falls inside the range.
// Lexicographic comparison is correct for zero-padded YYYY-MM strings.
func (r MonthRange) Contains(month string) bool {
	return month >= r.StartMonth && month <= r.EndMonth
}
