package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/charankumarpalimara/jewelstock/internal/models"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

// AnalyticsService composes the reporting view over sales, inventory
// and customers
type AnalyticsService struct {
	store  store.AnalyticsStore
	logger *zap.Logger
}

// Window normalizes the reporting date range, defaulting to the first
// of the current month through now.
func Window(start, end *time.Time) (time.Time, time.Time) {
	now := time.Now().UTC()
	s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	e := now
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	return s, e
}

// Report runs every aggregation branch concurrently. The branches are
// independent and each tolerates an empty result set.
func (s *AnalyticsService) Report(ctx context.Context, startParam, endParam *time.Time) (*models.Analytics, error) {
	start, end := Window(startParam, endParam)

	var (
		sales      models.SalesAnalytics
		inventory  models.InventoryAnalytics
		customer   models.CustomerAnalytics
		trends     []models.MonthlyRevenueRow
		topSelling []models.TopSellingItem
		categories []models.CategoryCount
		metals     []models.CategoryCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = s.store.SalesTotals(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		inventory, err = s.store.InventoryTotals(gctx)
		return err
	})
	g.Go(func() (err error) {
		customer, err = s.store.CustomerCounts(gctx, start)
		return err
	})
	g.Go(func() (err error) {
		trends, err = s.store.MonthlyRevenue(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		topSelling, err = s.store.TopSelling(gctx, start, end, 10)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.store.CategoryBreakdown(gctx)
		return err
	})
	g.Go(func() (err error) {
		metals, err = s.store.MetalTypeBreakdown(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("analytics aggregation failed", zap.Error(err))
		return nil, err
	}

	grossProfit := inventory.TotalValue - inventory.TotalCost
	profitMargin := 0.0
	if inventory.TotalValue > 0 {
		profitMargin = grossProfit / inventory.TotalValue * 100
	}

	if topSelling == nil {
		topSelling = []models.TopSellingItem{}
	}

	report := &models.Analytics{
		Sales: models.SalesReport{
			SalesAnalytics: sales,
			Sales:          []models.Sale{},
		},
		Inventory: models.InventoryReport{
			InventoryAnalytics: inventory,
			InStock:            inventory.TotalItems - inventory.LowStockItems,
			CategoryBreakdown:  countsToMap(categories),
			MetalTypeBreakdown: countsToMap(metals),
		},
		ProfitLoss: models.ProfitLoss{
			TotalRevenue: sales.TotalRevenue,
			TotalCost:    inventory.TotalCost,
			GrossProfit:  grossProfit,
			ProfitMargin: profitMargin,
		},
		Customer: models.CustomerReport{
			CustomerAnalytics:  customer,
			ReturningCustomers: customer.TotalCustomers,
		},
		Trends:     models.TrendReport{Trends: renderTrends(trends)},
		TopSelling: models.TopSellingList{Items: topSelling},
	}
	return report, nil
}

func countsToMap(counts []models.CategoryCount) map[string]int {
	out := make(map[string]int, len(counts))
	for _, c := range counts {
		out[c.Category] = c.Count
	}
	return out
}

func renderTrends(rows []models.MonthlyRevenueRow) []models.MonthlyTrend {
	trends := make([]models.MonthlyTrend, 0, len(rows))
	for _, row := range rows {
		label := time.Date(row.Year, time.Month(row.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan")
		trends = append(trends, models.MonthlyTrend{Month: label, Revenue: row.Revenue})
	}
	return trends
}
