package tags

import (
	"fmt"
	"strings"

	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/validation"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	tags, err := ctx.Store.GetTags()
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	fmt.Println("Categories:")
	for _, name := range constants.Categories {
		fmt.Printf("  %-4s %s\n", name, tags.Type[name])
	}
	fmt.Printf("\nPlaces:  %s\n", strings.Join(tags.Place, ", "))
	fmt.Printf("Cities:  %s\n", strings.Join(tags.City, ", "))
	return nil
}

type ColorCmd struct {
	Category string `arg:"" help:"Category name (Live|干饭|旅行|运动)."`
	Color    string `arg:"" help:"Hex color (#RRGGBB)."`
}

func (c *ColorCmd) Run(ctx *cli.Context) error {
	if !constants.IsCategory(c.Category) {
		return fmt.Errorf("unknown category %q (expected one of %s)", c.Category, strings.Join(constants.Categories, ", "))
	}
	if !validation.IsValidColor(c.Color) {
		return fmt.Errorf("invalid color %q (expected #RRGGBB)", c.Color)
	}
	if err := ctx.Store.SetCategoryColor(c.Category, c.Color); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}
	fmt.Printf("✓ %s is now %s\n", c.Category, c.Color)
	return nil
}

type AddPlaceCmd struct {
	Name string `arg:"" help:"Venue name to add."`
}

func (c *AddPlaceCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.AddPlace(c.Name); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}
	fmt.Printf("✓ Place added: %s\n", c.Name)
	return nil
}

type RemovePlaceCmd struct {
	Name string `arg:"" help:"Venue name to remove."`
}

func (c *RemovePlaceCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RemovePlace(c.Name); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}
	fmt.Printf("✓ Place removed: %s\n", c.Name)
	return nil
}

type AddCityCmd struct {
	Name string `arg:"" help:"City name to add."`
}

func (c *AddCityCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.AddCity(c.Name); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}
	fmt.Printf("✓ City added: %s\n", c.Name)
	return nil
}

type RemoveCityCmd struct {
	Name string `arg:"" help:"City name to remove."`
}

func (c *RemoveCityCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RemoveCity(c.Name); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}
	fmt.Printf("✓ City removed: %s\n", c.Name)
	return nil
}

type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.ResetTags(); err != nil {
		return fmt.Errorf("failed to reset tags: %w", err)
	}
	fmt.Println("✓ Tag vocabulary reset to defaults.")
	return nil
}
