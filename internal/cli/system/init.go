package system

import (
	"fmt"

	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/config"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := config.Save(ctx.ConfigPath, ctx.Config); err != nil {
		return err
	}

	// Seed the vocabulary and settings so first launch starts from the
	// documented defaults rather than empty blobs.
	if err := ctx.Store.ResetTags(); err != nil {
		return fmt.Errorf("failed to seed tags: %w", err)
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	fmt.Printf("✓ Initialized %s storage in %s\n", ctx.Config.Storage, ctx.DataDir)
	fmt.Printf("  Config written to %s\n", config.ExpandHome(ctx.ConfigPath))
	return nil
}
