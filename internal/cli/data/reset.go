package data

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gigcal/gigcal/internal/cli"
)

type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		fmt.Println("⚠️  WARNING: This removes all events, tags and settings.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := ctx.Store.ClearAll(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	fmt.Println("✓ All data cleared.")
	return nil
}
