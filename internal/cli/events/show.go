package events

import (
	"fmt"
	"strings"

	"github.com/gigcal/gigcal/internal/calendar"
	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/constants"
)

type ShowCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD)."`
}

func (c *ShowCmd) Validate() error {
	if !calendar.IsValidDate(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	events, err := ctx.Store.GetEventsByDate(c.Date)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}
	if len(events) == 0 {
		fmt.Printf("No events on %s.\n", c.Date)
		return nil
	}

	for i, e := range events {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s  %s\n", e.Date, e.Name)
		fmt.Printf("  ID:    %s\n", e.ID)
		fmt.Printf("  Types: %s\n", strings.Join(e.Types, constants.TypeSeparator))
		fmt.Printf("  Place: %s\n", e.Place)
		fmt.Printf("  City:  %s\n", e.City)
		fmt.Printf("  Color: %s\n", e.Color)
	}
	return nil
}
