package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charankumarpalimara/jewelstock/internal/config"
	"github.com/charankumarpalimara/jewelstock/internal/database"
)

var dropFirst bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the JewelStock database schema",
	Long: `Creates the application tables (users, customers, jewelry, sales,
sale_items, rates) if they do not exist yet.

Safe to run repeatedly; existing tables and data are left alone unless
--drop-first is given.`,
	RunE: setupDatabase,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing tables before creating")
}

func setupDatabase(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		fmt.Println("🗑️  Dropping existing tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating schema...")
	if err := db.InitSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	fmt.Println("✅ Database setup complete!")
	fmt.Println("💡 Next: jewelstock create-admin")
	return nil
}
