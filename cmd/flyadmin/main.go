package main

import (
	"os"

	"github.com/spf13/cobra"

	"flyadmin/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flyadmin",
		Short: "FlyAdmin - travel agency ticket administration",
		Long:  `FlyAdmin records flight tickets, customers and suppliers, computes per-ticket profit, and serves dashboard analytics over HTTP.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
