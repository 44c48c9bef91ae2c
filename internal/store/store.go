// Package store provides persistence for the jewelry inventory domain.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateSKU      = errors.New("sku already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// JewelryBulkUpdate is the single mutation applied by a bulk update
type JewelryBulkUpdate struct {
	Status            *string `json:"status"`
	IsActive          *bool   `json:"isActive"`
	Category          *string `json:"category"`
	LowStockThreshold *int    `json:"lowStockThreshold"`
}

// Empty reports whether the bulk update carries no fields
func (u JewelryBulkUpdate) Empty() bool {
	return u.Status == nil && u.IsActive == nil && u.Category == nil && u.LowStockThreshold == nil
}

type JewelryStore interface {
	List(ctx context.Context, f models.JewelryFilter) ([]models.Jewelry, int, error)
	Get(ctx context.Context, id int64) (*models.Jewelry, error)
	Create(ctx context.Context, j *models.Jewelry) error
	Update(ctx context.Context, j *models.Jewelry) error
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)
	BulkDelete(ctx context.Context, ids []int64) (int64, error)
	BulkUpdate(ctx context.Context, ids []int64, update JewelryBulkUpdate) (int64, error)
	LowStock(ctx context.Context, threshold int, excludeOutOfStock bool) ([]models.AlertItem, error)
	OutOfStock(ctx context.Context) ([]models.AlertItem, error)
}

type SaleStore interface {
	List(ctx context.Context, f models.SaleFilter) ([]models.Sale, int, error)
	Get(ctx context.Context, id int64) (*models.Sale, error)
	// Create persists the sale with its line items and decrements the
	// referenced jewelry stock in the same transaction. The decrement
	// is conditional on sufficient quantity; ErrInsufficientStock is
	// returned and nothing is written when stock ran out since the
	// caller's check.
	Create(ctx context.Context, s *models.Sale) error
	Update(ctx context.Context, s *models.Sale) error
	// Delete restores the referenced jewelry quantity when the jewelry
	// still exists, then removes the sale. A missing jewelry record
	// skips the restore without error.
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, start, end *time.Time) (models.SalesSummary, error)
}

type CustomerStore interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id int64) (*models.Customer, error)
	Create(ctx context.Context, c *models.Customer) error
	Update(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, id int64) error
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int64) error
	BulkDelete(ctx context.Context, ids []int64) (int64, error)
	Count(ctx context.Context) (int, error)
}

type RateStore interface {
	Latest(ctx context.Context) (*models.Rate, error)
	Create(ctx context.Context, r *models.Rate) error
	// Update overwrites an existing rate row in place.
	Update(ctx context.Context, r *models.Rate) error
	History(ctx context.Context, limit int) ([]models.Rate, error)
}

type AnalyticsStore interface {
	SalesTotals(ctx context.Context, start, end time.Time) (models.SalesAnalytics, error)
	InventoryTotals(ctx context.Context) (models.InventoryAnalytics, error)
	CustomerCounts(ctx context.Context, activeSince time.Time) (models.CustomerAnalytics, error)
	MonthlyRevenue(ctx context.Context, start, end time.Time) ([]models.MonthlyRevenueRow, error)
	TopSelling(ctx context.Context, start, end time.Time, limit int) ([]models.TopSellingItem, error)
	CategoryBreakdown(ctx context.Context) ([]models.CategoryCount, error)
	MetalTypeBreakdown(ctx context.Context) ([]models.CategoryCount, error)
}

// Store bundles all repositories behind one value
type Store struct {
	Jewelry   JewelryStore
	Sales     SaleStore
	Customers CustomerStore
	Users     UserStore
	Rates     RateStore
	Analytics AnalyticsStore
}
