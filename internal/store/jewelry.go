package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

const jewelryColumns = `id, sku, name, category, subtype, description, quantity,
	unit_price, cost_price, metal_type, metal_weight, stone_type, stone_weight,
	gemstone, weight, size, color, making_charges, wastage, labor_cost,
	other_costs, images, tags, notes, status, is_active, low_stock_threshold,
	min_stock_level, created_at, updated_at`

type SQLJewelryStore struct {
	db *sqlx.DB
}

func NewSQLJewelryStore(db *sqlx.DB) *SQLJewelryStore {
	return &SQLJewelryStore{db: db}
}

var _ JewelryStore = (*SQLJewelryStore)(nil)

func (s *SQLJewelryStore) List(ctx context.Context, f models.JewelryFilter) ([]models.Jewelry, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if f.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, f.Category)
	}
	if f.Search != "" {
		conditions = append(conditions, "(LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(sku) LIKE ?)")
		pattern := "%" + strings.ToLower(f.Search) + "%"
		args = append(args, pattern, pattern, pattern)
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM jewelry WHERE " + where
	if err := s.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count jewelry: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM jewelry WHERE %s ORDER BY created_at DESC LIMIT ? OFFSET ?",
		jewelryColumns, where,
	)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	items := []models.Jewelry{}
	if err := s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list jewelry: %w", err)
	}
	return items, total, nil
}

func (s *SQLJewelryStore) Get(ctx context.Context, id int64) (*models.Jewelry, error) {
	var j models.Jewelry
	query := fmt.Sprintf("SELECT %s FROM jewelry WHERE id = ?", jewelryColumns)
	if err := s.db.GetContext(ctx, &j, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (s *SQLJewelryStore) Create(ctx context.Context, j *models.Jewelry) error {
	res, err := s.db.NamedExecContext(ctx, `
		INSERT INTO jewelry (sku, name, category, subtype, description, quantity,
			unit_price, cost_price, metal_type, metal_weight, stone_type,
			stone_weight, gemstone, weight, size, color, making_charges, wastage,
			labor_cost, other_costs, images, tags, notes, status, is_active,
			low_stock_threshold, min_stock_level)
		VALUES (:sku, :name, :category, :subtype, :description, :quantity,
			:unit_price, :cost_price, :metal_type, :metal_weight, :stone_type,
			:stone_weight, :gemstone, :weight, :size, :color, :making_charges,
			:wastage, :labor_cost, :other_costs, :images, :tags, :notes, :status,
			:is_active, :low_stock_threshold, :min_stock_level)
	`, j)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateSKU
		}
		return fmt.Errorf("failed to create jewelry: %w", err)
	}
	j.ID, err = res.LastInsertId()
	return err
}

func (s *SQLJewelryStore) Update(ctx context.Context, j *models.Jewelry) error {
	res, err := s.db.NamedExecContext(ctx, `
		UPDATE jewelry SET sku = :sku, name = :name, category = :category,
			subtype = :subtype, description = :description, quantity = :quantity,
			unit_price = :unit_price, cost_price = :cost_price,
			metal_type = :metal_type, metal_weight = :metal_weight,
			stone_type = :stone_type, stone_weight = :stone_weight,
			gemstone = :gemstone, weight = :weight, size = :size, color = :color,
			making_charges = :making_charges, wastage = :wastage,
			labor_cost = :labor_cost, other_costs = :other_costs,
			images = :images, tags = :tags, notes = :notes, status = :status,
			is_active = :is_active, low_stock_threshold = :low_stock_threshold,
			min_stock_level = :min_stock_level
		WHERE id = :id
	`, j)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateSKU
		}
		return fmt.Errorf("failed to update jewelry: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLJewelryStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM jewelry WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete jewelry: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLJewelryStore) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := s.db.SelectContext(ctx, &categories, "SELECT DISTINCT category FROM jewelry ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *SQLJewelryStore) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM jewelry WHERE id IN (?)", ids)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete jewelry: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLJewelryStore) BulkUpdate(ctx context.Context, ids []int64, update JewelryBulkUpdate) (int64, error) {
	if len(ids) == 0 || update.Empty() {
		return 0, nil
	}

	sets := []string{}
	args := []interface{}{}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *update.Status)
	}
	if update.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *update.IsActive)
	}
	if update.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *update.Category)
	}
	if update.LowStockThreshold != nil {
		sets = append(sets, "low_stock_threshold = ?")
		args = append(args, *update.LowStockThreshold)
	}

	args = append(args, ids)
	query, args, err := sqlx.In(
		fmt.Sprintf("UPDATE jewelry SET %s WHERE id IN (?)", strings.Join(sets, ", ")),
		args...,
	)
	if err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update jewelry: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLJewelryStore) LowStock(ctx context.Context, threshold int, excludeOutOfStock bool) ([]models.AlertItem, error) {
	query := "SELECT id, name, sku, category, quantity FROM jewelry WHERE quantity <= ?"
	if excludeOutOfStock {
		query += " AND quantity > 0"
	}
	items := []models.AlertItem{}
	if err := s.db.SelectContext(ctx, &items, query, threshold); err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	return items, nil
}

func (s *SQLJewelryStore) OutOfStock(ctx context.Context) ([]models.AlertItem, error) {
	items := []models.AlertItem{}
	query := "SELECT id, name, sku, category, quantity FROM jewelry WHERE quantity = 0"
	if err := s.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list out of stock items: %w", err)
	}
	return items, nil
}

// isDuplicateKey reports a MySQL unique constraint violation (1062)
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
