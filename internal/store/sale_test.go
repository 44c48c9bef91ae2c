package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func testSale() *models.Sale {
	return &models.Sale{
		Subtotal:      2000,
		TotalAmount:   2000,
		PaymentMethod: models.PaymentCash,
		PaymentStatus: models.PaymentStatusPending,
		Status:        models.SaleStatusConfirmed,
		SaleDate:      time.Now().UTC(),
		Items: []models.SaleItem{{
			JewelryID:  7,
			Quantity:   2,
			UnitPrice:  1000,
			TotalPrice: 2000,
		}},
	}
}

func TestSaleCreateDecrementsStockInTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewSQLSaleStore(db)
	sale := testSale()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM sales").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectExec("INSERT INTO sales").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO sale_items").
		WithArgs(int64(11), int64(7), 2, 1000.0, 2000.0).
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("UPDATE jewelry SET quantity = quantity - \\?").
		WithArgs(2, int64(7), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Create(context.Background(), sale))

	assert.Equal(t, int64(11), sale.ID)
	assert.Equal(t, "SALE-000005", sale.SaleNumber)
	assert.Equal(t, int64(11), sale.Items[0].SaleID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleCreateRollsBackWhenStockGuardFails(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewSQLSaleStore(db)
	sale := testSale()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM sales").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO sales").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO sale_items").
		WillReturnResult(sqlmock.NewResult(2, 1))
	// Guarded decrement touches no rows when quantity is short
	mock.ExpectExec("UPDATE jewelry SET quantity = quantity - \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := store.Create(context.Background(), sale)
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleCreateStampsCustomer(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewSQLSaleStore(db)
	sale := testSale()
	customerID := int64(3)
	sale.CustomerID = &customerID

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM sales").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO sales").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO sale_items").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("UPDATE jewelry SET quantity = quantity - \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE customers SET last_purchase_date").
		WithArgs(sale.SaleDate, customerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Create(context.Background(), sale))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleDeleteRestoresStock(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewSQLSaleStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, sale_id, jewelry_id, quantity, unit_price, total_price FROM sale_items").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "sale_id", "jewelry_id", "quantity", "unit_price", "total_price"}).
			AddRow(1, 9, 7, 2, 1000.0, 2000.0))
	mock.ExpectExec("UPDATE jewelry SET quantity = quantity \\+ \\?").
		WithArgs(2, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM sales WHERE id = \\?").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Delete(context.Background(), int64(9)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewSQLSaleStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, sale_id, jewelry_id, quantity, unit_price, total_price FROM sale_items").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "sale_id", "jewelry_id", "quantity", "unit_price", "total_price"}))
	mock.ExpectExec("DELETE FROM sales WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := store.Delete(context.Background(), int64(404))
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesSummaryAvoidsJoinDoubleCount(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewSQLSaleStore(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(s.total_amount\\), 0\\)").
		WillReturnRows(sqlmock.NewRows(
			[]string{"total_sales", "average_sale", "total_sales_count"}).
			AddRow(6000.0, 2000.0, 3))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(i.quantity\\), 0\\)").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(5))

	summary, err := store.Summary(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 6000.0, summary.TotalSales)
	assert.Equal(t, 2000.0, summary.AverageSale)
	assert.Equal(t, 3, summary.TotalSalesCount)
	assert.Equal(t, 5, summary.TotalQuantity)
	require.NoError(t, mock.ExpectationsWereMet())
}
