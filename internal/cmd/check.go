package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charankumarpalimara/jewelstock/internal/config"
	"github.com/charankumarpalimara/jewelstock/internal/database"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check configuration and database connectivity",
	Long: `Verifies that the configuration loads, the database is reachable and
the schema tables exist. Useful before the first run or after changing
connection settings.`,
	RunE: checkSetup,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkSetup(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Checking JewelStock setup...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fmt.Printf("   Environment: %s | Server: %s\n", cfg.Environment, cfg.Server.Addr)

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.HealthCheck(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	fmt.Println("   ✅ Database reachable")

	fmt.Println("📋 Checking schema...")
	missing, err := missingTables(db)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if len(missing) > 0 {
		fmt.Printf("   ⚠️  Missing tables: %v\n", missing)
		fmt.Println("💡 Run: jewelstock setup")
		return nil
	}
	fmt.Println("   ✅ All tables present")

	fmt.Println("\n✅ Everything looks good!")
	return nil
}

func missingTables(db *database.DB) ([]string, error) {
	required := []string{"users", "customers", "jewelry", "sales", "sale_items", "rates"}

	var missing []string
	for _, table := range required {
		var name string
		err := db.GetContext(context.Background(), &name,
			"SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?",
			table)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			missing = append(missing, table)
		case err != nil:
			return nil, fmt.Errorf("checking table %s: %w", table, err)
		}
	}
	return missing, nil
}
