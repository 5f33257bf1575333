package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oswinp/curiodb/internal/app"
)

var importRatingsCmd = &cobra.Command{
	Use:   "import-ratings <ratings.csv>",
	Short: "Import a Letterboxd ratings export",
	Long: `Import-ratings reads a Letterboxd CSV export (Name, Year, Rating on a
5-point scale) and reconciles it against the film catalog: missing films are
created with seen set, changed ratings are updated, unchanged rows are
skipped. Ratings are rescaled onto the 10-point internal scale.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		if err := application.ImportRatings(args[0]); err != nil {
			return fmt.Errorf("rating import failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importRatingsCmd)
}
