package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/mrvrecords/config"
	"github.com/shashiranjanraj/mrvrecords/pkg/database"
)

// bootDB loads config and opens the database connection.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

// mrvrecords db:bootstrap
var dbBootstrapCmd = &cobra.Command{
	Use:   "db:bootstrap",
	Short: "Create any missing tables and columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close()

		if err := application.BootstrapTables(database.DB); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Tables are up to date.")
		return nil
	},
}
