package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charankumarpalimara/jewelstock/internal/models"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

func TestInventoryCreateDefaults(t *testing.T) {
	svc, _ := newTestServices(t)

	j, err := svc.Inventory.Create(context.Background(), &models.JewelryInput{
		SKU:       "RING-100",
		Name:      "Plain Band",
		Category:  models.CategoryRings,
		UnitPrice: 1200,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, j.Quantity)
	assert.Equal(t, models.JewelryStatusActive, j.Status)
	assert.True(t, j.IsActive)
	assert.Equal(t, 10, j.LowStockThreshold)
	assert.Equal(t, 5, j.MinStockLevel)
}

func TestInventoryCreateRejectsInvalidCategory(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Inventory.Create(context.Background(), &models.JewelryInput{
		SKU:      "X-1",
		Name:     "Mystery Item",
		Category: "furniture",
	}, nil)
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestInventoryCreateDuplicateSKU(t *testing.T) {
	svc, _ := newTestServices(t)
	seedJewelry(t, svc, "RING-101", 1, 100)

	_, err := svc.Inventory.Create(context.Background(), &models.JewelryInput{
		SKU:      "RING-101",
		Name:     "Copycat",
		Category: models.CategoryRings,
	}, nil)
	require.ErrorIs(t, err, store.ErrDuplicateSKU)
}

func TestInventoryListPagination(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	for i := 0; i < 25; i++ {
		seedJewelry(t, svc, fmt.Sprintf("SKU-%03d", i), 1, 100)
	}

	page, err := svc.Inventory.List(ctx, models.JewelryFilter{})
	require.NoError(t, err)
	assert.Len(t, page.Jewelry, 10)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)

	last, err := svc.Inventory.List(ctx, models.JewelryFilter{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, last.Jewelry, 5)
	assert.Equal(t, 3, last.CurrentPage)
}

func TestInventoryUpdateKeepsImagesWhenNoneAttached(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	qty := 2
	j, err := svc.Inventory.Create(ctx, &models.JewelryInput{
		SKU:      "RING-102",
		Name:     "Stone Ring",
		Category: models.CategoryRings,
		Quantity: &qty,
	}, []string{"a.jpg", "b.jpg"})
	require.NoError(t, err)

	updated, err := svc.Inventory.Update(ctx, j.ID, &models.JewelryUpdateInput{
		Name: strPtr("Stone Ring v2"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"a.jpg", "b.jpg"}, updated.Images)
	assert.Equal(t, 2, updated.Quantity)

	replaced, err := svc.Inventory.Update(ctx, j.ID, &models.JewelryUpdateInput{
		Name: strPtr("Stone Ring v3"),
	}, []string{"c.jpg"})
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"c.jpg"}, replaced.Images)
}

func TestInventoryUpdateAppliesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	qty := 8
	j, err := svc.Inventory.Create(ctx, &models.JewelryInput{
		SKU:         "RING-103",
		Name:        "Emerald Ring",
		Category:    models.CategoryRings,
		Quantity:    &qty,
		UnitPrice:   1200,
		Description: strPtr("18k gold with emerald"),
		MetalType:   strPtr("gold"),
	}, nil)
	require.NoError(t, err)

	newQty := 3
	updated, err := svc.Inventory.Update(ctx, j.ID, &models.JewelryUpdateInput{
		Quantity: &newQty,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "RING-103", updated.SKU)
	assert.Equal(t, "Emerald Ring", updated.Name)
	assert.Equal(t, 1200.0, updated.UnitPrice)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "18k gold with emerald", *updated.Description)
	require.NotNil(t, updated.MetalType)
	assert.Equal(t, "gold", *updated.MetalType)
}

func TestInventoryUpdateRejectsInvalidCategory(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	j := seedJewelry(t, svc, "RING-104", 1, 100)

	_, err := svc.Inventory.Update(ctx, j.ID, &models.JewelryUpdateInput{
		Category: strPtr("gadgets"),
	}, nil)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func strPtr(s string) *string { return &s }

func TestInventoryBulkDeleteCountsOnlyExisting(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	a := seedJewelry(t, svc, "BULK-1", 1, 100)
	b := seedJewelry(t, svc, "BULK-2", 1, 100)

	res, err := svc.Inventory.Bulk(ctx, "delete", []int64{a.ID, b.ID, 9999}, store.JewelryBulkUpdate{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.AffectedCount)
	assert.Equal(t, "delete", res.Operation)
}

func TestInventoryBulkUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	a := seedJewelry(t, svc, "BULK-3", 1, 100)
	b := seedJewelry(t, svc, "BULK-4", 1, 100)

	status := models.JewelryStatusInactive
	res, err := svc.Inventory.Bulk(ctx, "update", []int64{a.ID, b.ID}, store.JewelryBulkUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.AffectedCount)

	after, err := svc.Inventory.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JewelryStatusInactive, after.Status)
}

func TestInventoryBulkUnknownOperation(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Inventory.Bulk(context.Background(), "archive", []int64{1}, store.JewelryBulkUpdate{})
	require.ErrorIs(t, err, ErrUnknownBulkOperation)
}

func TestInventoryCategories(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	seedJewelry(t, svc, "CAT-1", 1, 100)

	_, err := svc.Inventory.Create(ctx, &models.JewelryInput{
		SKU:      "CAT-2",
		Name:     "Gold Chain",
		Category: models.CategoryNecklaces,
	}, nil)
	require.NoError(t, err)

	categories, err := svc.Inventory.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{models.CategoryNecklaces, models.CategoryRings}, categories)
}
