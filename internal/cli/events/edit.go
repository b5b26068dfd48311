package events

import (
	"fmt"

	"github.com/gigcal/gigcal/internal/calendar"
	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/validation"
)

type EditCmd struct {
	ID    string  `arg:"" help:"Event ID to edit."`
	Date  *string `help:"New date (YYYY-MM-DD)."`
	Name  *string `help:"New name."`
	Types *string `short:"t" help:"New comma-separated categories; empty string clears."`
	Place *string `short:"p" help:"New venue name; empty string clears."`
	City  *string `short:"c" help:"New city name; empty string clears."`
	Color *string `help:"New hex color (#RRGGBB)."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	event, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return err
	}

	updated := false
	if c.Date != nil {
		if !calendar.IsValidDate(*c.Date) {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", *c.Date)
		}
		event.Date = *c.Date
		updated = true
	}
	if c.Name != nil {
		event.Name = *c.Name
		updated = true
	}
	if c.Types != nil {
		types, err := cli.ParseTypes(*c.Types)
		if err != nil {
			return err
		}
		event.Types = types
		updated = true
	}
	if c.Place != nil {
		event.Place = *c.Place
		updated = true
	}
	if c.City != nil {
		event.City = *c.City
		updated = true
	}
	if c.Color != nil {
		if !validation.IsValidColor(*c.Color) {
			return fmt.Errorf("invalid color %q (expected #RRGGBB)", *c.Color)
		}
		event.Color = *c.Color
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified.")
		return nil
	}

	if problems := validation.CheckEvent(event, true); len(problems) > 0 {
		return fmt.Errorf("%s", problems[0])
	}
	if _, err := ctx.Store.SaveEvent(event); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	fmt.Printf("✓ Event updated: %s\n", cli.FormatEvent(event))
	return nil
}
