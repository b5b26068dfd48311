package events

import (
	"fmt"
	"regexp"

	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/models"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

type ListCmd struct {
	Start string `help:"Start month (YYYY-MM) of an inclusive range filter."`
	End   string `help:"End month (YYYY-MM) of an inclusive range filter."`
	IDs   bool   `help:"Show event IDs."`
}

func (c *ListCmd) Validate() error {
	if (c.Start == "") != (c.End == "") {
		return fmt.Errorf("--start and --end must be given together")
	}
	for _, m := range []string{c.Start, c.End} {
		if m != "" && !monthRe.MatchString(m) {
			return fmt.Errorf("invalid month %q (expected YYYY-MM)", m)
		}
	}
	return nil
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	var (
		events []models.Event
		err    error
	)
	if c.Start != "" {
		events, err = ctx.Store.GetEventsByDateRange(c.Start, c.End)
	} else {
		events, err = ctx.Store.GetAllEvents()
	}
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No events found.")
		return nil
	}

	for _, e := range events {
		if c.IDs {
			fmt.Printf("%s  %s\n", e.ID, cli.FormatEvent(e))
		} else {
			fmt.Println(cli.FormatEvent(e))
		}
	}
	fmt.Printf("\n%d event(s)\n", len(events))
	return nil
}
