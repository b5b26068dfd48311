package system

import (
	"fmt"
	"time"

	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/controller"
	"github.com/gigcal/gigcal/internal/tui"
)

type ViewCmd struct {
	Year  int `short:"y" help:"Year to display. Defaults to the current year."`
	Month int `short:"m" help:"Month to display (1-12). Defaults to the current month."`
}

func (c *ViewCmd) Validate() error {
	if c.Month < 0 || c.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func (c *ViewCmd) Run(ctx *cli.Context) error {
	ctrl := controller.New(ctx.Store, time.Now)
	if c.Year != 0 || c.Month != 0 {
		now := time.Now()
		year, month := c.Year, c.Month
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}
		ctrl.SetMonth(year, month-1)
	}

	grid, err := ctrl.Grid()
	if err != nil {
		return fmt.Errorf("failed to build grid: %w", err)
	}

	fmt.Println(tui.RenderMonth(ctrl.Title(), grid, -1))
	return nil
}
