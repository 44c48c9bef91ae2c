package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

func TestRatesFallBackToDefaults(t *testing.T) {
	svc, _ := newTestServices(t)

	quotes, err := svc.Rates.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5500.0, quotes.Gold.Price)
	assert.Equal(t, 75.0, quotes.Silver.Price)
}

func TestRatesFirstUpdateCreatesRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	quotes, err := svc.Rates.Update(ctx, &models.RateInput{Gold: 6000, Silver: 80})
	require.NoError(t, err)
	assert.Equal(t, 6000.0, quotes.Gold.Price)

	current, err := svc.Rates.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6000.0, current.Gold.Price)
	assert.Equal(t, 80.0, current.Silver.Price)
}

func TestRatesUpdateOverwritesLatest(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	_, err := svc.Rates.Update(ctx, &models.RateInput{Gold: 6000, Silver: 80})
	require.NoError(t, err)
	_, err = svc.Rates.Update(ctx, &models.RateInput{Gold: 6100, Silver: 82})
	require.NoError(t, err)

	current, err := svc.Rates.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6100.0, current.Gold.Price)

	// Repeated updates rewrite the same row, history stays at one
	history, err := svc.Rates.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
