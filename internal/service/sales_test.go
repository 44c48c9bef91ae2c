package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charankumarpalimara/jewelstock/internal/models"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

func TestSaleCreateAdjustsStock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	j := seedJewelry(t, svc, "RING-001", 5, 1000)

	sale, err := svc.Sales.Create(ctx, &models.SaleInput{
		JewelryID:     j.ID,
		Quantity:      3,
		UnitPrice:     1000,
		PaymentMethod: models.PaymentCash,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "SALE-000001", sale.SaleNumber)
	assert.Equal(t, models.PaymentStatusPending, sale.PaymentStatus)
	assert.Equal(t, models.SaleStatusConfirmed, sale.Status)
	assert.Equal(t, 3000.0, sale.Subtotal)
	assert.Equal(t, 3000.0, sale.TotalAmount)

	after, err := svc.Inventory.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.Quantity)

	// Deleting the sale puts the quantity back
	require.NoError(t, svc.Sales.Delete(ctx, sale.ID))
	restored, err := svc.Inventory.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, restored.Quantity)
}

func TestSaleCreateInsufficientStock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	j := seedJewelry(t, svc, "RING-002", 2, 500)

	_, err := svc.Sales.Create(ctx, &models.SaleInput{
		JewelryID:     j.ID,
		Quantity:      3,
		UnitPrice:     500,
		PaymentMethod: models.PaymentCard,
	}, nil)
	require.ErrorIs(t, err, store.ErrInsufficientStock)

	// Nothing was written
	after, err := svc.Inventory.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.Quantity)

	page, err := svc.Sales.List(ctx, models.SaleFilter{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestSaleCreateRejectsUnknownJewelry(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Sales.Create(context.Background(), &models.SaleInput{
		JewelryID:     999,
		Quantity:      1,
		UnitPrice:     100,
		PaymentMethod: models.PaymentCash,
	}, nil)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaleCreateRejectsInvalidPaymentMethod(t *testing.T) {
	svc, _ := newTestServices(t)
	j := seedJewelry(t, svc, "RING-003", 5, 100)

	_, err := svc.Sales.Create(context.Background(), &models.SaleInput{
		JewelryID:     j.ID,
		Quantity:      1,
		UnitPrice:     100,
		PaymentMethod: "barter",
	}, nil)
	require.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestSaleCreateTotalsWithDiscountAndTax(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	j := seedJewelry(t, svc, "NECK-001", 10, 2000)

	sale, err := svc.Sales.Create(ctx, &models.SaleInput{
		JewelryID:     j.ID,
		Quantity:      2,
		UnitPrice:     2000,
		TotalAmount:   1, // client-supplied totals are ignored
		Discount:      500,
		Tax:           120,
		PaymentMethod: models.PaymentUPI,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 4000.0, sale.Subtotal)
	assert.Equal(t, 3620.0, sale.TotalAmount)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, 4000.0, sale.Items[0].TotalPrice)
}

func TestSaleUpdateRecomputesTotals(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	j := seedJewelry(t, svc, "EAR-001", 10, 300)

	sale, err := svc.Sales.Create(ctx, &models.SaleInput{
		JewelryID:     j.ID,
		Quantity:      2,
		UnitPrice:     300,
		PaymentMethod: models.PaymentCash,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 600.0, sale.TotalAmount)

	discount := 100.0
	status := models.PaymentStatusPaid
	updated, err := svc.Sales.Update(ctx, sale.ID, &models.SaleUpdateInput{
		Discount:      &discount,
		PaymentStatus: &status,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 500.0, updated.TotalAmount)
	assert.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)

	// Stock is untouched by updates
	after, err := svc.Inventory.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, after.Quantity)
}

func TestSaleDeleteSkipsRestoreForDeletedJewelry(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	j := seedJewelry(t, svc, "BRC-001", 4, 800)

	sale, err := svc.Sales.Create(ctx, &models.SaleInput{
		JewelryID:     j.ID,
		Quantity:      2,
		UnitPrice:     800,
		PaymentMethod: models.PaymentCash,
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Inventory.Delete(ctx, j.ID))
	require.NoError(t, svc.Sales.Delete(ctx, sale.ID))

	_, err = svc.Inventory.Get(ctx, j.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaleCreateStampsCustomerLastPurchase(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	j := seedJewelry(t, svc, "RING-010", 5, 1500)

	customer, err := svc.Customers.Create(ctx, &models.CustomerInput{Name: "Asha Patel"})
	require.NoError(t, err)
	require.Nil(t, customer.LastPurchaseDate)

	_, err = svc.Sales.Create(ctx, &models.SaleInput{
		JewelryID:     j.ID,
		CustomerID:    &customer.ID,
		Quantity:      1,
		UnitPrice:     1500,
		PaymentMethod: models.PaymentCard,
	}, nil)
	require.NoError(t, err)

	after, err := svc.Customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	require.NotNil(t, after.LastPurchaseDate)
}

func TestSalesSummary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	j := seedJewelry(t, svc, "RING-020", 20, 100)

	for i := 0; i < 3; i++ {
		_, err := svc.Sales.Create(ctx, &models.SaleInput{
			JewelryID:     j.ID,
			Quantity:      2,
			UnitPrice:     100,
			PaymentMethod: models.PaymentCash,
		}, nil)
		require.NoError(t, err)
	}

	summary, err := svc.Sales.Summary(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 600.0, summary.TotalSales)
	assert.Equal(t, 6, summary.TotalQuantity)
	assert.Equal(t, 3, summary.TotalSalesCount)
	assert.Equal(t, 200.0, summary.AverageSale)
}
