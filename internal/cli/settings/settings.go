package settings

import (
	"fmt"

	"github.com/gigcal/gigcal/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Font          *string `help:"Font identifier, or \"system\"."`
	MenuCollapsed *bool   `help:"Collapse the navigation menu."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Font:           %s\n", settings.Font)
		fmt.Printf("  Menu Collapsed: %v\n", settings.MenuCollapsed)
		fmt.Printf("  Version:        %s\n", settings.Version)
		return nil
	}

	updated := false
	if c.Font != nil {
		settings.Font = *c.Font
		updated = true
	}
	if c.MenuCollapsed != nil {
		settings.MenuCollapsed = *c.MenuCollapsed
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
