package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oswinp/curiodb/internal/app"
)

var importCmd = &cobra.Command{
	Use:   "import [entries...]",
	Short: "Import films by title or TMDB id",
	Long: `Import resolves each entry against TMDB and creates the films that do
not exist yet. An entry is either a free-text title or a numeric TMDB id.
Prefix an argument with @ to read one entry per line from a file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := expandEntries(args)
		if err != nil {
			return err
		}

		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		if err := application.ImportBatch(entries); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		return nil
	},
}

// expandEntries replaces @file arguments with the file's lines.
func expandEntries(args []string) ([]string, error) {
	entries := []string{}
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") {
			entries = append(entries, arg)
			continue
		}

		body, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return nil, fmt.Errorf("failed to read entry file: %w", err)
		}
		entries = append(entries, strings.Split(string(body), "\n")...)
	}
	return entries, nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
