package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertsSeparateLowStockFromOutOfStock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	seedJewelry(t, svc, "AL-EMPTY", 0, 100)
	seedJewelry(t, svc, "AL-LOW", 3, 100)
	seedJewelry(t, svc, "AL-OK", 50, 100)

	alerts, err := svc.Alerts.All(ctx, 0)
	require.NoError(t, err)

	require.Equal(t, 1, alerts.LowStock.Count)
	assert.Equal(t, "AL-LOW", alerts.LowStock.Items[0].SKU)
	require.Equal(t, 1, alerts.OutOfStock.Count)
	assert.Equal(t, "AL-EMPTY", alerts.OutOfStock.Items[0].SKU)
	assert.Equal(t, 2, alerts.TotalAlerts)
}

func TestLowStockReportIncludesZeroQuantity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	seedJewelry(t, svc, "AL-ZERO", 0, 100)
	seedJewelry(t, svc, "AL-FIVE", 5, 100)

	report, err := svc.Alerts.LowStock(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultAlertThreshold, report.Threshold)
	assert.Equal(t, 2, report.Count)
}

func TestLowStockCustomThreshold(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	seedJewelry(t, svc, "AL-TWO", 2, 100)
	seedJewelry(t, svc, "AL-EIGHT", 8, 100)

	report, err := svc.Alerts.LowStock(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Threshold)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, "AL-TWO", report.Alerts[0].SKU)
}

func TestOutOfStockReport(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	seedJewelry(t, svc, "AL-GONE", 0, 100)
	seedJewelry(t, svc, "AL-LEFT", 1, 100)

	report, err := svc.Alerts.OutOfStock(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, "AL-GONE", report.Alerts[0].SKU)
}
