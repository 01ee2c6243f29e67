package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/mrvrecords/app/models"
	"github.com/shashiranjanraj/mrvrecords/app/routes"
	"github.com/shashiranjanraj/mrvrecords/pkg/app"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var application = app.New().
	Routes(routes.RegisterAPI).
	Bootstrap(models.Bootstrap)

var rootCmd = &cobra.Command{
	Use:           "mrvrecords",
	Short:         "MRV master product record service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(dbBootstrapCmd)
}
