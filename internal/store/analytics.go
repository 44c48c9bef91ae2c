package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

type SQLAnalyticsStore struct {
	db *sqlx.DB
}

func NewSQLAnalyticsStore(db *sqlx.DB) *SQLAnalyticsStore {
	return &SQLAnalyticsStore{db: db}
}

var _ AnalyticsStore = (*SQLAnalyticsStore)(nil)

func (s *SQLAnalyticsStore) SalesTotals(ctx context.Context, start, end time.Time) (models.SalesAnalytics, error) {
	var out models.SalesAnalytics
	query := `
		SELECT COALESCE(SUM(total_amount), 0) AS total_revenue,
			COUNT(*) AS total_sales,
			COALESCE(AVG(total_amount), 0) AS average_order_value
		FROM sales
		WHERE sale_date BETWEEN ? AND ?`
	if err := s.db.GetContext(ctx, &out, query, start, end); err != nil {
		return models.SalesAnalytics{}, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	return out, nil
}

// InventoryTotals counts items with quantity at or below a fixed
// cutoff of 5 as low stock. This is intentionally distinct from the
// per-item configurable alert threshold.
func (s *SQLAnalyticsStore) InventoryTotals(ctx context.Context) (models.InventoryAnalytics, error) {
	var out models.InventoryAnalytics
	query := `
		SELECT COUNT(*) AS total_items,
			COALESCE(SUM(unit_price), 0) AS total_value,
			COALESCE(SUM(cost_price), 0) AS total_cost,
			COALESCE(SUM(CASE WHEN quantity <= 5 THEN 1 ELSE 0 END), 0) AS low_stock_items
		FROM jewelry`
	if err := s.db.GetContext(ctx, &out, query); err != nil {
		return models.InventoryAnalytics{}, fmt.Errorf("failed to aggregate inventory: %w", err)
	}
	return out, nil
}

func (s *SQLAnalyticsStore) CustomerCounts(ctx context.Context, activeSince time.Time) (models.CustomerAnalytics, error) {
	var out models.CustomerAnalytics
	query := `
		SELECT COUNT(*) AS total_customers,
			COALESCE(SUM(CASE WHEN last_purchase_date >= ? THEN 1 ELSE 0 END), 0) AS active_customers
		FROM customers`
	if err := s.db.GetContext(ctx, &out, query, activeSince); err != nil {
		return models.CustomerAnalytics{}, fmt.Errorf("failed to aggregate customers: %w", err)
	}
	return out, nil
}

func (s *SQLAnalyticsStore) MonthlyRevenue(ctx context.Context, start, end time.Time) ([]models.MonthlyRevenueRow, error) {
	rows := []models.MonthlyRevenueRow{}
	query := `
		SELECT YEAR(sale_date) AS year, MONTH(sale_date) AS month,
			COALESCE(SUM(total_amount), 0) AS revenue
		FROM sales
		WHERE sale_date BETWEEN ? AND ?
		GROUP BY YEAR(sale_date), MONTH(sale_date)
		ORDER BY year ASC, month ASC`
	if err := s.db.SelectContext(ctx, &rows, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly revenue: %w", err)
	}
	return rows, nil
}

func (s *SQLAnalyticsStore) TopSelling(ctx context.Context, start, end time.Time, limit int) ([]models.TopSellingItem, error) {
	items := []models.TopSellingItem{}
	query := `
		SELECT i.jewelry_id, j.name AS jewelry_name,
			COALESCE(SUM(i.quantity), 0) AS quantity,
			COALESCE(SUM(i.total_price), 0) AS revenue
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		JOIN jewelry j ON j.id = i.jewelry_id
		WHERE s.sale_date BETWEEN ? AND ?
		GROUP BY i.jewelry_id, j.name
		ORDER BY revenue DESC
		LIMIT ?`
	if err := s.db.SelectContext(ctx, &items, query, start, end, limit); err != nil {
		return nil, fmt.Errorf("failed to aggregate top sellers: %w", err)
	}
	return items, nil
}

func (s *SQLAnalyticsStore) CategoryBreakdown(ctx context.Context) ([]models.CategoryCount, error) {
	counts := []models.CategoryCount{}
	query := `
		SELECT COALESCE(category, 'uncategorized') AS category, COUNT(*) AS count
		FROM jewelry GROUP BY category`
	if err := s.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate categories: %w", err)
	}
	return counts, nil
}

func (s *SQLAnalyticsStore) MetalTypeBreakdown(ctx context.Context) ([]models.CategoryCount, error) {
	counts := []models.CategoryCount{}
	query := `
		SELECT COALESCE(metal_type, 'unknown') AS category, COUNT(*) AS count
		FROM jewelry GROUP BY metal_type`
	if err := s.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate metal types: %w", err)
	}
	return counts, nil
}
