package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

func TestWindowDefaults(t *testing.T) {
	start, end := Window(nil, nil)

	now := time.Now().UTC()
	assert.Equal(t, now.Year(), start.Year())
	assert.Equal(t, now.Month(), start.Month())
	assert.Equal(t, 1, start.Day())
	assert.False(t, end.Before(start))
}

func TestWindowExplicitRange(t *testing.T) {
	s := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	e := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	start, end := Window(&s, &e)
	assert.Equal(t, s, start)
	assert.Equal(t, e, end)
}

func TestAnalyticsReportEmptyData(t *testing.T) {
	svc, _ := newTestServices(t)

	report, err := svc.Analytics.Report(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Zero(t, report.Sales.TotalRevenue)
	assert.Zero(t, report.Sales.AverageOrderValue)
	assert.Zero(t, report.ProfitLoss.ProfitMargin)
	assert.Empty(t, report.Trends.Trends)
	require.NotNil(t, report.TopSelling.Items)
	assert.Empty(t, report.TopSelling.Items)
	assert.NotNil(t, report.Sales.Sales)
	assert.NotNil(t, report.Inventory.CategoryBreakdown)
}

func TestAnalyticsReport(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	gold := "gold"
	_, err := svc.Inventory.Create(ctx, &models.JewelryInput{
		SKU:       "AN-RING",
		Name:      "Gold Ring",
		Category:  models.CategoryRings,
		Quantity:  intPtr(10),
		UnitPrice: 1000,
		CostPrice: 700,
		MetalType: &gold,
	}, nil)
	require.NoError(t, err)

	silver := "silver"
	chain, err := svc.Inventory.Create(ctx, &models.JewelryInput{
		SKU:       "AN-CHAIN",
		Name:      "Silver Chain",
		Category:  models.CategoryNecklaces,
		Quantity:  intPtr(10),
		UnitPrice: 500,
		CostPrice: 300,
		MetalType: &silver,
	}, nil)
	require.NoError(t, err)

	_, err = svc.Sales.Create(ctx, &models.SaleInput{
		JewelryID:     chain.ID,
		Quantity:      2,
		UnitPrice:     500,
		PaymentMethod: models.PaymentCash,
	}, nil)
	require.NoError(t, err)

	report, err := svc.Analytics.Report(ctx, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, report.Sales.TotalRevenue)
	assert.Equal(t, 1, report.Sales.TotalSales)
	assert.Equal(t, 1000.0, report.Sales.AverageOrderValue)

	assert.Equal(t, 2, report.Inventory.TotalItems)
	assert.Equal(t, 1500.0, report.Inventory.TotalValue)
	assert.Equal(t, 1000.0, report.Inventory.TotalCost)
	assert.Equal(t, map[string]int{models.CategoryRings: 1, models.CategoryNecklaces: 1}, report.Inventory.CategoryBreakdown)
	assert.Equal(t, map[string]int{"gold": 1, "silver": 1}, report.Inventory.MetalTypeBreakdown)

	assert.Equal(t, 500.0, report.ProfitLoss.GrossProfit)
	assert.InDelta(t, 33.33, report.ProfitLoss.ProfitMargin, 0.01)

	assert.Equal(t, 0, report.Customer.NewCustomers)
	assert.Equal(t, report.Customer.TotalCustomers, report.Customer.ReturningCustomers)

	require.Len(t, report.TopSelling.Items, 1)
	assert.Equal(t, chain.ID, report.TopSelling.Items[0].JewelryID)
	assert.Equal(t, 1000.0, report.TopSelling.Items[0].Revenue)

	require.Len(t, report.Trends.Trends, 1)
	assert.Equal(t, time.Now().UTC().Format("Jan"), report.Trends.Trends[0].Month)
	assert.Equal(t, 1000.0, report.Trends.Trends[0].Revenue)
}

func intPtr(i int) *int { return &i }
