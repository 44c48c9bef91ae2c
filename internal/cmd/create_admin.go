package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charankumarpalimara/jewelstock/internal/config"
	"github.com/charankumarpalimara/jewelstock/internal/database"
	"github.com/charankumarpalimara/jewelstock/internal/models"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create the initial staff accounts",
	Long: `Creates a superadmin, an admin and a worker account so the API can
be used right after setup.

Does nothing if any user already exists; existing accounts are listed
instead.`,
	RunE: createAdminUsers,
}

func init() {
	rootCmd.AddCommand(createAdminCmd)
}

func createAdminUsers(cmd *cobra.Command, args []string) error {
	fmt.Println("👤 Creating initial staff accounts...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	stores := newStores(db)
	services := newServices(db, cfg, logger)

	count, err := stores.Users.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		fmt.Println("⚠️  Users already exist in database:")
		existing, err := services.Users.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		for _, u := range existing {
			fmt.Printf("   - %s (%s) - Role: %s\n", u.Name, u.Email, u.Role)
		}
		return nil
	}

	accounts := []models.UserInput{
		{Name: "Super Admin", Email: "superadmin@jewelry.com", Password: "admin123", Role: models.RoleSuperAdmin},
		{Name: "Admin User", Email: "admin@jewelry.com", Password: "admin123", Role: models.RoleAdmin},
		{Name: "Worker User", Email: "worker@jewelry.com", Password: "worker123", Role: models.RoleWorker},
	}

	for i := range accounts {
		u, err := services.Users.Create(ctx, &accounts[i])
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", accounts[i].Email, err)
		}
		fmt.Printf("   ✅ Created %s (%s) - Role: %s\n", u.Name, u.Email, u.Role)
	}

	fmt.Println("\n✅ All accounts created!")
	fmt.Println("💡 Login credentials:")
	fmt.Println("   Super Admin: superadmin@jewelry.com / admin123")
	fmt.Println("   Admin:       admin@jewelry.com / admin123")
	fmt.Println("   Worker:      worker@jewelry.com / worker123")
	return nil
}
