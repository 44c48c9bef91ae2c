package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/charankumarpalimara/jewelstock/internal/models"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

// SalesService manages sale transactions and their stock side effects
type SalesService struct {
	sales   store.SaleStore
	jewelry store.JewelryStore
	logger  *zap.Logger
}

// SalesPage is one page of a sales listing
type SalesPage struct {
	Sales       []models.Sale `json:"sales"`
	Total       int           `json:"total"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

func (s *SalesService) List(ctx context.Context, f models.SaleFilter) (*SalesPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	sales, total, err := s.sales.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &SalesPage{
		Sales:       sales,
		Total:       total,
		TotalPages:  (total + f.Limit - 1) / f.Limit,
		CurrentPage: f.Page,
	}, nil
}

func (s *SalesService) Get(ctx context.Context, id int64) (*models.Sale, error) {
	return s.sales.Get(ctx, id)
}

// Create records a sale and decrements the referenced jewelry stock.
// The jewelry must exist and carry enough quantity; the store layer
// re-checks the quantity atomically so a concurrent sale cannot slip
// between the check and the decrement.
func (s *SalesService) Create(ctx context.Context, input *models.SaleInput, createdBy *int64) (*models.Sale, error) {
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	jewelry, err := s.jewelry.Get(ctx, input.JewelryID)
	if err != nil {
		return nil, err
	}
	if jewelry.Quantity < input.Quantity {
		return nil, store.ErrInsufficientStock
	}

	sale := &models.Sale{
		CustomerID:    input.CustomerID,
		Discount:      input.Discount,
		Tax:           input.Tax,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
		Status:        models.SaleStatusConfirmed,
		Notes:         input.Notes,
		SaleDate:      time.Now().UTC(),
		CreatedBy:     createdBy,
		Items: []models.SaleItem{{
			JewelryID: input.JewelryID,
			Quantity:  input.Quantity,
			UnitPrice: input.UnitPrice,
		}},
	}
	sale.RecalculateTotals()

	if err := s.sales.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.logger.Info("sale created",
		zap.String("saleNumber", sale.SaleNumber),
		zap.Int64("jewelryId", input.JewelryID),
		zap.Int("quantity", input.Quantity))
	return sale, nil
}

// Update replaces sale fields in place. Stock is deliberately not
// re-adjusted, even when the update touches quantities.
func (s *SalesService) Update(ctx context.Context, id int64, input *models.SaleUpdateInput, updatedBy *int64) (*models.Sale, error) {
	sale, err := s.sales.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CustomerID != nil {
		sale.CustomerID = input.CustomerID
	}
	if input.Discount != nil {
		sale.Discount = *input.Discount
	}
	if input.Tax != nil {
		sale.Tax = *input.Tax
	}
	if input.PaymentMethod != nil {
		if !models.ValidPaymentMethod(*input.PaymentMethod) {
			return nil, ErrInvalidPaymentMethod
		}
		sale.PaymentMethod = *input.PaymentMethod
	}
	if input.PaymentStatus != nil {
		sale.PaymentStatus = *input.PaymentStatus
	}
	if input.PaidAmount != nil {
		sale.PaidAmount = *input.PaidAmount
	}
	if input.Status != nil {
		sale.Status = *input.Status
	}
	if input.Notes != nil {
		sale.Notes = input.Notes
	}
	sale.UpdatedBy = updatedBy
	sale.RecalculateTotals()

	if err := s.sales.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Delete removes a sale, restoring the sold quantity to any jewelry
// record that still exists.
func (s *SalesService) Delete(ctx context.Context, id int64) error {
	if err := s.sales.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("sale deleted", zap.Int64("id", id))
	return nil
}

// Summary aggregates totals over an optional date window
func (s *SalesService) Summary(ctx context.Context, start, end *time.Time) (models.SalesSummary, error) {
	return s.sales.Summary(ctx, start, end)
}
