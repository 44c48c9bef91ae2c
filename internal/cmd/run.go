package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/charankumarpalimara/jewelstock/internal/auth"
	"github.com/charankumarpalimara/jewelstock/internal/config"
	"github.com/charankumarpalimara/jewelstock/internal/database"
	"github.com/charankumarpalimara/jewelstock/internal/server"
	"github.com/charankumarpalimara/jewelstock/internal/service"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the JewelStock API server",
	Long: `Start the JewelStock server which provides:
- REST API for inventory, sales, customers, rates and users
- JWT-based authentication with role permissions
- Stock alerts and business analytics endpoints`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 JewelStock Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("✅ Database connected successfully")

	fmt.Println("⚙️  Setting up server...")
	services := newServices(db, cfg, logger)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	srv := server.NewServer(db, services, tokens, cfg, logger)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newStores(db *database.DB) *store.Store {
	return &store.Store{
		Jewelry:   store.NewSQLJewelryStore(db.DB),
		Sales:     store.NewSQLSaleStore(db.DB),
		Customers: store.NewSQLCustomerStore(db.DB),
		Users:     store.NewSQLUserStore(db.DB),
		Rates:     store.NewSQLRateStore(db.DB),
		Analytics: store.NewSQLAnalyticsStore(db.DB),
	}
}

func newServices(db *database.DB, cfg *config.Config, logger *zap.Logger) *service.Services {
	defaults := service.RateDefaults{
		Gold:   cfg.Rates.DefaultGold,
		Silver: cfg.Rates.DefaultSilver,
	}
	return service.New(newStores(db), defaults, logger)
}
