package exchange

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
)

// ExportICS serializes events as an iCalendar feed with one all-day VEVENT
// per event, for subscribing from other calendar applications. ICS is an
// export-only format here; import accepts CSV and JSON.
func ExportICS(events []models.Event, now time.Time) ([]byte, error) {
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//" + constants.AppName + "//" + constants.Version + "//EN")

	for _, e := range events {
		day, err := time.Parse(constants.DateFormat, e.Date)
		if err != nil {
			return nil, fmt.Errorf("event %q has invalid date %q: %w", e.Name, e.Date, err)
		}

		uid := e.ID
		if uid == "" {
			uid = uuid.NewString()
		}
		ve := cal.AddEvent(uid + "@" + constants.AppName)
		ve.SetDtStampTime(now.UTC())
		ve.SetAllDayStartAt(day)
		ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
		ve.SetSummary(e.Name)
		if loc := icsLocation(e); loc != "" {
			ve.SetLocation(loc)
		}
		if len(e.Types) > 0 {
			ve.SetProperty(ical.ComponentPropertyCategories, strings.Join(e.Types, ","))
		}
	}

	return []byte(cal.Serialize()), nil
}

func icsLocation(e models.Event) string {
	switch {
	case e.Place != "" && e.City != "":
		return e.Place + ", " + e.City
	case e.Place != "":
		return e.Place
	default:
		return e.City
	}
}
