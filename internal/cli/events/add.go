package events

import (
	"fmt"

	"github.com/gigcal/gigcal/internal/calendar"
	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/models"
	"github.com/gigcal/gigcal/internal/validation"
)

type AddCmd struct {
	Date  string `arg:"" help:"Event date (YYYY-MM-DD)."`
	Name  string `arg:"" help:"Event name."`
	Types string `short:"t" help:"Comma-separated categories (Live,干饭,旅行,运动)."`
	Place string `short:"p" help:"Venue name."`
	City  string `short:"c" help:"City name."`
	Color string `help:"Hex color (#RRGGBB)." default:"${defaultColor}"`
}

func (c *AddCmd) Validate() error {
	if !calendar.IsValidDate(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	if c.Color != "" && !validation.IsValidColor(c.Color) {
		return fmt.Errorf("invalid color %q (expected #RRGGBB)", c.Color)
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	types, err := cli.ParseTypes(c.Types)
	if err != nil {
		return err
	}

	event := models.Event{
		Date:  c.Date,
		Name:  c.Name,
		Types: types,
		Place: c.Place,
		City:  c.City,
		Color: c.Color,
	}
	if problems := validation.CheckEvent(event, true); len(problems) > 0 {
		return fmt.Errorf("%s", problems[0])
	}

	saved, err := ctx.Store.SaveEvent(event)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	// Adding a new venue or city keeps the tag vocabulary in sync with use.
	if c.Place != "" {
		if err := ctx.Store.AddPlace(c.Place); err != nil {
			return err
		}
	}
	if c.City != "" {
		if err := ctx.Store.AddCity(c.City); err != nil {
			return err
		}
	}

	fmt.Printf("✓ Event added: %s (id %s)\n", cli.FormatEvent(saved), saved.ID)
	return nil
}
