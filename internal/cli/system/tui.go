package system

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/controller"
	"github.com/gigcal/gigcal/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctrl := controller.New(ctx.Store, time.Now)
	model, err := tui.NewModel(ctrl)
	if err != nil {
		return fmt.Errorf("failed to start calendar: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("calendar exited with error: %w", err)
	}
	return nil
}
