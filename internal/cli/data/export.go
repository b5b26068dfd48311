package data

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/exchange"
	"github.com/gigcal/gigcal/internal/models"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

type ExportCmd struct {
	Start  string `arg:"" help:"Start month (YYYY-MM), inclusive."`
	End    string `arg:"" help:"End month (YYYY-MM), inclusive."`
	Format string `short:"f" help:"Export format (csv|json|ics)." default:"csv"`
	Output string `short:"o" help:"Output file. Defaults to the conventional export name in the current directory."`
}

func (c *ExportCmd) Validate() error {
	for _, m := range []string{c.Start, c.End} {
		if !monthRe.MatchString(m) {
			return fmt.Errorf("invalid month %q (expected YYYY-MM)", m)
		}
	}
	if c.Start > c.End {
		return fmt.Errorf("start month %s is after end month %s", c.Start, c.End)
	}
	_, err := exchange.ParseFormat(c.Format)
	return err
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	format, err := exchange.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	events, err := ctx.Store.GetEventsByDateRange(c.Start, c.End)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	r := models.MonthRange{StartMonth: c.Start, EndMonth: c.End}
	var data []byte
	switch format {
	case exchange.FormatCSV:
		data, err = exchange.ExportCSV(events)
	case exchange.FormatJSON:
		data, err = exchange.ExportJSON(events, r, time.Now())
	case exchange.FormatICS:
		data, err = exchange.ExportICS(events, time.Now())
	}
	if err != nil {
		return err
	}

	output := c.Output
	if output == "" {
		output = exchange.ExportFilename(format, r)
	}
	if err := os.WriteFile(output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("✓ Exported %d event(s) to %s\n", len(events), output)
	return nil
}
