package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecalculateTotals(t *testing.T) {
	sale := Sale{
		Discount: 300,
		Tax:      150,
		Items: []SaleItem{
			{Quantity: 2, UnitPrice: 1000},
			{Quantity: 1, UnitPrice: 500},
		},
	}
	sale.RecalculateTotals()

	assert.Equal(t, 2000.0, sale.Items[0].TotalPrice)
	assert.Equal(t, 500.0, sale.Items[1].TotalPrice)
	assert.Equal(t, 2500.0, sale.Subtotal)
	assert.Equal(t, 2350.0, sale.TotalAmount)
}

func TestRecalculateTotalsWithoutItems(t *testing.T) {
	sale := Sale{Subtotal: 1000, Discount: 100, Tax: 50}
	sale.RecalculateTotals()

	assert.Equal(t, 1000.0, sale.Subtotal)
	assert.Equal(t, 950.0, sale.TotalAmount)
}

func TestFormatSaleNumber(t *testing.T) {
	assert.Equal(t, "SALE-000001", FormatSaleNumber(1))
	assert.Equal(t, "SALE-001042", FormatSaleNumber(1042))
}
