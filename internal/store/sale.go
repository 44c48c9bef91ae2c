package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

type SQLSaleStore struct {
	db *sqlx.DB
}

func NewSQLSaleStore(db *sqlx.DB) *SQLSaleStore {
	return &SQLSaleStore{db: db}
}

var _ SaleStore = (*SQLSaleStore)(nil)

func (s *SQLSaleStore) List(ctx context.Context, f models.SaleFilter) ([]models.Sale, int, error) {
	where := "1=1"
	args := []interface{}{}
	if f.StartDate != nil && f.EndDate != nil {
		where += " AND s.sale_date BETWEEN ? AND ?"
		args = append(args, *f.StartDate, *f.EndDate)
	}

	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM sales s WHERE "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	query := `
		SELECT s.id, s.sale_number, s.customer_id, s.subtotal, s.discount, s.tax,
			s.total_amount, s.payment_method, s.payment_status, s.paid_amount,
			s.status, s.notes, s.sale_date, s.created_by, s.updated_by,
			s.created_at, s.updated_at,
			c.name AS customer_name, c.email AS customer_email
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE ` + where + `
		ORDER BY s.sale_date DESC
		LIMIT ? OFFSET ?`
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	sales := []models.Sale{}
	if err := s.db.SelectContext(ctx, &sales, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}

	for i := range sales {
		items, err := s.itemsForSale(ctx, sales[i].ID)
		if err != nil {
			return nil, 0, err
		}
		sales[i].Items = items
	}
	return sales, total, nil
}

func (s *SQLSaleStore) Get(ctx context.Context, id int64) (*models.Sale, error) {
	var sale models.Sale
	query := `
		SELECT s.id, s.sale_number, s.customer_id, s.subtotal, s.discount, s.tax,
			s.total_amount, s.payment_method, s.payment_status, s.paid_amount,
			s.status, s.notes, s.sale_date, s.created_by, s.updated_by,
			s.created_at, s.updated_at,
			c.name AS customer_name, c.email AS customer_email
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.id = ?`
	if err := s.db.GetContext(ctx, &sale, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, err := s.itemsForSale(ctx, id)
	if err != nil {
		return nil, err
	}
	sale.Items = items
	return &sale, nil
}

func (s *SQLSaleStore) itemsForSale(ctx context.Context, saleID int64) ([]models.SaleItem, error) {
	items := []models.SaleItem{}
	query := `
		SELECT i.id, i.sale_id, i.jewelry_id, i.quantity, i.unit_price, i.total_price,
			j.name AS jewelry_name, j.sku AS jewelry_sku, j.category AS jewelry_category
		FROM sale_items i
		LEFT JOIN jewelry j ON j.id = i.jewelry_id
		WHERE i.sale_id = ?
		ORDER BY i.id`
	if err := s.db.SelectContext(ctx, &items, query, saleID); err != nil {
		return nil, fmt.Errorf("failed to load sale items: %w", err)
	}
	return items, nil
}

// Create persists the sale, its items, the stock decrement and the
// customer's last-purchase stamp in one transaction. The decrement
// guards on remaining quantity so two concurrent sales cannot both
// take the last unit.
func (s *SQLSaleStore) Create(ctx context.Context, sale *models.Sale) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int64
	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM sales"); err != nil {
		return fmt.Errorf("failed to count sales: %w", err)
	}
	sale.SaleNumber = models.FormatSaleNumber(count + 1)

	res, err := tx.ExecContext(ctx, `
		INSERT INTO sales (sale_number, customer_id, subtotal, discount, tax,
			total_amount, payment_method, payment_status, paid_amount, status,
			notes, sale_date, created_by, updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sale.SaleNumber, sale.CustomerID, sale.Subtotal, sale.Discount, sale.Tax,
		sale.TotalAmount, sale.PaymentMethod, sale.PaymentStatus, sale.PaidAmount,
		sale.Status, sale.Notes, sale.SaleDate, sale.CreatedBy, sale.UpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}
	sale.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	for i := range sale.Items {
		item := &sale.Items[i]
		item.SaleID = sale.ID
		res, err := tx.ExecContext(ctx, `
			INSERT INTO sale_items (sale_id, jewelry_id, quantity, unit_price, total_price)
			VALUES (?, ?, ?, ?, ?)
		`, item.SaleID, item.JewelryID, item.Quantity, item.UnitPrice, item.TotalPrice)
		if err != nil {
			return fmt.Errorf("failed to insert sale item: %w", err)
		}
		if item.ID, err = res.LastInsertId(); err != nil {
			return err
		}

		dec, err := tx.ExecContext(ctx, `
			UPDATE jewelry SET quantity = quantity - ?
			WHERE id = ? AND quantity >= ?
		`, item.Quantity, item.JewelryID, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
		if rows, _ := dec.RowsAffected(); rows == 0 {
			return ErrInsufficientStock
		}
	}

	if sale.CustomerID != nil {
		_, err = tx.ExecContext(ctx,
			"UPDATE customers SET last_purchase_date = ? WHERE id = ?",
			sale.SaleDate, *sale.CustomerID)
		if err != nil {
			return fmt.Errorf("failed to stamp customer purchase: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLSaleStore) Update(ctx context.Context, sale *models.Sale) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE sales SET customer_id = ?, subtotal = ?, discount = ?, tax = ?,
			total_amount = ?, payment_method = ?, payment_status = ?,
			paid_amount = ?, status = ?, notes = ?, updated_by = ?
		WHERE id = ?
	`, sale.CustomerID, sale.Subtotal, sale.Discount, sale.Tax, sale.TotalAmount,
		sale.PaymentMethod, sale.PaymentStatus, sale.PaidAmount, sale.Status,
		sale.Notes, sale.UpdatedBy, sale.ID)
	if err != nil {
		return fmt.Errorf("failed to update sale: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete restores stock for line items whose jewelry still exists and
// removes the sale. Jewelry deleted since the sale is skipped silently.
func (s *SQLSaleStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	items := []models.SaleItem{}
	err = tx.SelectContext(ctx, &items,
		"SELECT id, sale_id, jewelry_id, quantity, unit_price, total_price FROM sale_items WHERE sale_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to load sale items: %w", err)
	}

	for _, item := range items {
		_, err := tx.ExecContext(ctx,
			"UPDATE jewelry SET quantity = quantity + ? WHERE id = ?",
			item.Quantity, item.JewelryID)
		if err != nil {
			return fmt.Errorf("failed to restore stock: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM sales WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (s *SQLSaleStore) Summary(ctx context.Context, start, end *time.Time) (models.SalesSummary, error) {
	where := "1=1"
	args := []interface{}{}
	if start != nil && end != nil {
		where += " AND s.sale_date BETWEEN ? AND ?"
		args = append(args, *start, *end)
	}

	var summary models.SalesSummary
	query := `
		SELECT COALESCE(SUM(s.total_amount), 0) AS total_sales,
			COALESCE(AVG(s.total_amount), 0) AS average_sale,
			COUNT(*) AS total_sales_count
		FROM sales s
		WHERE ` + where
	if err := s.db.GetContext(ctx, &summary, query, args...); err != nil {
		return models.SalesSummary{}, fmt.Errorf("failed to summarize sales: %w", err)
	}

	qtyQuery := `
		SELECT COALESCE(SUM(i.quantity), 0)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE ` + where
	if err := s.db.GetContext(ctx, &summary.TotalQuantity, qtyQuery, args...); err != nil {
		return models.SalesSummary{}, fmt.Errorf("failed to summarize sale quantities: %w", err)
	}
	return summary, nil
}
