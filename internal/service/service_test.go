package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/charankumarpalimara/jewelstock/internal/models"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

func newTestServices(t *testing.T) (*Services, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	defaults := RateDefaults{Gold: 5500, Silver: 75}
	return New(mem.Bundle(), defaults, zap.NewNop()), mem
}

func seedJewelry(t *testing.T, svc *Services, sku string, quantity int, unitPrice float64) *models.Jewelry {
	t.Helper()
	j, err := svc.Inventory.Create(context.Background(), &models.JewelryInput{
		SKU:       sku,
		Name:      "Test " + sku,
		Category:  models.CategoryRings,
		Quantity:  &quantity,
		UnitPrice: unitPrice,
		CostPrice: unitPrice * 0.8,
	}, nil)
	if err != nil {
		t.Fatalf("seed jewelry %s: %v", sku, err)
	}
	return j
}
