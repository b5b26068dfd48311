package data

import (
	"fmt"
	"os"

	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/exchange"
)

type ImportCmd struct {
	File   string `arg:"" help:"CSV or JSON file to import."`
	Mode   string `short:"m" help:"Import mode (merge|overwrite)." default:"merge"`
	Strict bool   `help:"Reject the whole file if any row fails validation."`
}

func (c *ImportCmd) Validate() error {
	if _, err := exchange.ParseMode(c.Mode); err != nil {
		return err
	}
	_, err := exchange.DetectFormat(c.File)
	return err
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	format, err := exchange.DetectFormat(c.File)
	if err != nil {
		return err
	}
	mode, err := exchange.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	summary, err := exchange.Import(ctx.Store, format, data, exchange.ImportOptions{
		Mode:   mode,
		Strict: c.Strict,
	})
	for _, msg := range summary.Errors {
		fmt.Fprintf(os.Stderr, "  %s\n", msg)
	}
	if err != nil {
		return err
	}

	fmt.Printf("✓ Import finished: %s\n", summary)
	return nil
}
