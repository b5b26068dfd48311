package events

import (
	"errors"
	"fmt"

	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/storage"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Event ID to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	event, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("No event with id %s.\n", c.ID)
			return nil
		}
		return err
	}

	if err := ctx.Store.DeleteEvent(c.ID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	fmt.Printf("✓ Event deleted: %s\n", cli.FormatEvent(event))
	return nil
}
