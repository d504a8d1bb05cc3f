package main

import (
	"os"

	"github.com/spf13/cobra"

	"caseta/internal/interfaces/cli/migrate"
	"caseta/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "caseta",
		Short: "Caseta - vehicle access control backend",
		Long:  `Caseta is the admin backend for a gated community vehicle registry: owners, vehicles, gate movements and access reports.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
