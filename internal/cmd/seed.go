package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charankumarpalimara/jewelstock/internal/config"
	"github.com/charankumarpalimara/jewelstock/internal/database"
	"github.com/charankumarpalimara/jewelstock/internal/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo inventory and metal rates",
	Long: `Populate the database with a handful of jewelry items, a demo
customer and today's metal rates so the API has something to show.

Intended for development and demos, not production.`,
	RunE: seedDemoData,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func strptr(s string) *string { return &s }
func fptr(f float64) *float64 { return &f }
func intptr(i int) *int       { return &i }

func seedDemoData(cmd *cobra.Command, args []string) error {
	fmt.Println("💎 Seeding demo data...")

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
	services := newServices(db, cfg, logger)

	fmt.Println("💰 Setting metal rates...")
	quotes, err := services.Rates.Update(ctx, &models.RateInput{
		Gold:   cfg.Rates.DefaultGold,
		Silver: cfg.Rates.DefaultSilver,
	})
	if err != nil {
		return fmt.Errorf("failed to set rates: %w", err)
	}
	fmt.Printf("   Gold: %.2f/g | Silver: %.2f/g\n", quotes.Gold.Price, quotes.Silver.Price)

	fmt.Println("📿 Creating jewelry items...")
	items := []models.JewelryInput{
		{
			SKU:       "RING-G22-001",
			Name:      "Classic 22K Gold Band",
			Category:  models.CategoryRings,
			Quantity:  intptr(12),
			UnitPrice: 28500,
			CostPrice: 24000,
			MetalType: strptr("gold"),
			Weight:    fptr(4.2),
			Size:      strptr("7"),
			Tags:      []string{"gold", "wedding"},
		},
		{
			SKU:       "NECK-G22-004",
			Name:      "Temple Necklace",
			Category:  models.CategoryNecklaces,
			Quantity:  intptr(3),
			UnitPrice: 145000,
			CostPrice: 121000,
			MetalType: strptr("gold"),
			Weight:    fptr(24.8),
			Gemstone:  strptr("ruby"),
			Tags:      []string{"gold", "bridal"},
		},
		{
			SKU:       "EAR-S92-010",
			Name:      "Silver Jhumka Earrings",
			Category:  models.CategoryEarrings,
			Quantity:  intptr(20),
			UnitPrice: 2400,
			CostPrice: 1600,
			MetalType: strptr("silver"),
			Weight:    fptr(11.5),
			Tags:      []string{"silver", "daily-wear"},
		},
		{
			SKU:       "BRC-G18-002",
			Name:      "18K Gold Chain Bracelet",
			Category:  models.CategoryBracelets,
			Quantity:  intptr(2),
			UnitPrice: 52000,
			CostPrice: 44500,
			MetalType: strptr("gold"),
			Weight:    fptr(8.9),
			Tags:      []string{"gold"},
		},
		{
			SKU:       "WAT-SS-007",
			Name:      "Gold-Plated Dress Watch",
			Category:  models.CategoryWatches,
			Quantity:  intptr(6),
			UnitPrice: 9800,
			CostPrice: 7200,
			Tags:      []string{"watch", "gift"},
		},
	}

	for i := range items {
		j, err := services.Inventory.Create(ctx, &items[i], nil)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", items[i].SKU, err)
		}
		fmt.Printf("   ✅ %s (%s) x%d\n", j.Name, j.SKU, j.Quantity)
	}

	fmt.Println("👥 Creating demo customer...")
	customer, err := services.Customers.Create(ctx, &models.CustomerInput{
		Name:  "Walk-in Customer",
		Phone: strptr("0000000000"),
	})
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	fmt.Printf("   ✅ %s (#%d)\n", customer.Name, customer.ID)

	fmt.Println("\n✅ Demo data seeded!")
	return nil
}
