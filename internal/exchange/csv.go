package exchange

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

// ExportCSV serializes events to the canonical CSV contract: the fixed
// header, one row per event, multi-valued categories joined with 、, and the
// text fields unconditionally quoted with internal quotes doubled. The
// output is prefixed with a UTF-8 BOM so spreadsheet applications detect the
// encoding.
func ExportCSV(events []models.Event) ([]byte, error) {
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	var b strings.Builder
	b.WriteString(constants.UTF8BOM)
	b.WriteString(strings.Join(constants.CSVHeader, ","))
	for _, e := range events {
		b.WriteString("\n")
		b.WriteString(strings.Join([]string{
			e.Date,
			quote(e.Name),
			quote(strings.Join(e.Types, constants.TypeSeparator)),
			quote(e.Place),
			quote(e.City),
			e.Color,
		}, ","))
	}
	return []byte(b.String()), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// csv column indices in canonical positional order
const (
	colDate = iota
	colName
	colTypes
	colPlace
	colCity
	colColor
	colCount
)

// ImportCSV parses CSV text into candidate events. Fields are matched by
// header name when the first row is a recognized header (canonical or
// legacy), positionally otherwise. Parsing is quote-aware, so embedded
// commas and doubled quotes round-trip. Rows are returned unvalidated;
// validation is a separate pipeline step.
func ImportCSV(data []byte) ([]models.Event, error) {
	text := strings.TrimPrefix(string(data), constants.UTF8BOM)

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file")
	}

	cols, rows := columnIndex(records)

	events := make([]models.Event, 0, len(rows))
	for _, rec := range rows {
		field := func(col int) string {
			idx, ok := cols[col]
			if !ok || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}

		color := field(colColor)
		if color == "" {
			color = constants.DefaultColor
		}
		events = append(events, models.Event{
			Date:  field(colDate),
			Name:  field(colName),
			Types: splitTypes(field(colTypes)),
			Place: field(colPlace),
			City:  field(colCity),
			Color: color,
		})
	}
	return events, nil
}

// columnIndex decides the column layout. It returns a mapping from logical
// column to record index, plus the data rows with any header row stripped.
func columnIndex(records [][]string) (map[int]int, [][]string) {
	byName := map[string]int{
		"日期":   colDate,
		"事件名称": colName,
		"名称":   colName,
		"类型":   colTypes,
		"地点":   colPlace,
		"城市":   colCity,
		"颜色":   colColor,
	}

	first := records[0]
	recognized := 0
	cols := make(map[int]int, colCount)
	for i, cell := range first {
		if col, ok := byName[strings.TrimSpace(cell)]; ok {
			cols[col] = i
			recognized++
		}
	}
	if recognized >= 2 {
		return cols, records[1:]
	}

	// No recognizable header: positional layout in canonical column order.
	cols = make(map[int]int, colCount)
	for col := colDate; col < colCount; col++ {
		cols[col] = col
	}
	return cols, records
}

// splitTypes splits a multi-valued category cell. The full-width 、 is the
// canonical separator; ; is accepted as a legacy alias.
func splitTypes(s string) []string {
	s = strings.ReplaceAll(s, ";", constants.TypeSeparator)
	types := []string{}
	for _, t := range strings.Split(s, constants.TypeSeparator) {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}
