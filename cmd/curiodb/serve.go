package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oswinp/curiodb/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalog HTTP server",
	Long: `Serve starts the REST API on the configured listen address. Every
collection gets uniform CRUD routes; films additionally expose the batch
import and CSV rating import endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		if err := application.Serve(); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
