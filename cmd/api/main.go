package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/coatdesk/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coatdesk",
		Short: "CoatDesk API Server",
		Long:  `CoatDesk is the backend for a vehicle and vessel ceramic-coating studio: customers, staff, services, products, appointments, sales and SMS notifications over flat-file JSON storage.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewDataCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewSMSCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
