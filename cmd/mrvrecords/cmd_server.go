package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/mrvrecords/config"
	"github.com/shashiranjanraj/mrvrecords/pkg/database"
	"github.com/shashiranjanraj/mrvrecords/pkg/logger"
)

// mrvrecords serve: create missing tables, then serve HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		if uri := config.LogMongoURI(); uri != "" {
			closeSink, err := logger.EnableMongoSink(uri, config.LogMongoDatabase(), config.LogMongoCollection())
			if err != nil {
				logger.Warn("mongo log sink disabled", "error", err)
			} else {
				defer closeSink()
			}
		}

		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close()

		if err := application.BootstrapTables(database.DB); err != nil {
			return err
		}
		return application.Serve(database.DB)
	},
}

// mrvrecords route:list: print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		infos := application.RouteList()
		if len(infos) == 0 {
			fmt.Println("No routes registered.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

