package service

import (
	"context"

	"github.com/charankumarpalimara/jewelstock/internal/models"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

// DefaultAlertThreshold applies when the caller supplies none
const DefaultAlertThreshold = 10

// AlertsService derives stock alerts from inventory. Pure read side,
// no persistence.
type AlertsService struct {
	jewelry store.JewelryStore
}

// AlertGroup is one named bucket of alert items
type AlertGroup struct {
	Items []models.AlertItem `json:"items"`
	Count int                `json:"count"`
}

// StockAlerts separates low-stock from out-of-stock so an item is
// never counted twice
type StockAlerts struct {
	LowStock    AlertGroup `json:"lowStock"`
	OutOfStock  AlertGroup `json:"outOfStock"`
	TotalAlerts int        `json:"totalAlerts"`
}

// LowStockReport is the flat low-stock view including zero-quantity items
type LowStockReport struct {
	Alerts    []models.AlertItem `json:"alerts"`
	Count     int                `json:"count"`
	Threshold int                `json:"threshold"`
}

// OutOfStockReport lists items with no remaining quantity
type OutOfStockReport struct {
	Alerts []models.AlertItem `json:"alerts"`
	Count  int                `json:"count"`
}

func (s *AlertsService) LowStock(ctx context.Context, threshold int) (*LowStockReport, error) {
	if threshold <= 0 {
		threshold = DefaultAlertThreshold
	}
	items, err := s.jewelry.LowStock(ctx, threshold, false)
	if err != nil {
		return nil, err
	}
	return &LowStockReport{Alerts: items, Count: len(items), Threshold: threshold}, nil
}

func (s *AlertsService) OutOfStock(ctx context.Context) (*OutOfStockReport, error) {
	items, err := s.jewelry.OutOfStock(ctx)
	if err != nil {
		return nil, err
	}
	return &OutOfStockReport{Alerts: items, Count: len(items)}, nil
}

func (s *AlertsService) All(ctx context.Context, threshold int) (*StockAlerts, error) {
	if threshold <= 0 {
		threshold = DefaultAlertThreshold
	}

	low, err := s.jewelry.LowStock(ctx, threshold, true)
	if err != nil {
		return nil, err
	}
	out, err := s.jewelry.OutOfStock(ctx)
	if err != nil {
		return nil, err
	}

	return &StockAlerts{
		LowStock:    AlertGroup{Items: low, Count: len(low)},
		OutOfStock:  AlertGroup{Items: out, Count: len(out)},
		TotalAlerts: len(low) + len(out),
	}, nil
}
