package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jewelstock",
	Short: "JewelStock - Jewelry Inventory & Sales Management",
	Long: `JewelStock is the backend for a jewelry store: inventory tracking,
sales recording with automatic stock adjustment, metal rates, stock
alerts and business analytics.

Run it as an HTTP API server, or use the CLI commands to prepare the
database and seed initial data.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
