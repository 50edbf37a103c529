package main

import (
	"fmt"

	"github.com/dom/timesheet/internal/config"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		defer a.close()

		if a.cfg.DatabaseURL == config.MemoryDatabaseURL {
			return fmt.Errorf("nothing to migrate for DATABASE_URL=%s", config.MemoryDatabaseURL)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
		return nil
	},
}
