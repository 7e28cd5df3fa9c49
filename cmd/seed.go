package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"shopfront/internal/catalog"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [dir]",
		Short: "Write a demo catalog into a directory",
		Long: `Seed writes a small demo catalog into the given directory: product
records under products/, descriptions and placeholder media under
assets/. Defaults to the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", dir, err)
			}
			count, err := catalog.Seed(absDir)
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %d products in %s\n", count, absDir)
			fmt.Printf("Browse them with: shopfront %s\n", absDir)
			return nil
		},
	}
}
