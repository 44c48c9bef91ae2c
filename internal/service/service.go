// Package service implements the business workflows on top of the
// persistence layer.
package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/charankumarpalimara/jewelstock/internal/store"
)

var (
	ErrInvalidCategory      = errors.New("valid category is required")
	ErrInvalidPaymentMethod = errors.New("valid payment method is required")
	ErrInvalidRole          = errors.New("valid role is required")
	ErrUnknownBulkOperation = errors.New("unknown bulk operation")
)

// Services bundles every workflow behind one value
type Services struct {
	Inventory *InventoryService
	Sales     *SalesService
	Customers *CustomerService
	Users     *UserService
	Rates     *RateService
	Alerts    *AlertsService
	Analytics *AnalyticsService
}

// RateDefaults are returned when no rate record exists yet
type RateDefaults struct {
	Gold   float64
	Silver float64
}

func New(st *store.Store, defaults RateDefaults, logger *zap.Logger) *Services {
	return &Services{
		Inventory: &InventoryService{jewelry: st.Jewelry, logger: logger},
		Sales:     &SalesService{sales: st.Sales, jewelry: st.Jewelry, logger: logger},
		Customers: &CustomerService{customers: st.Customers, logger: logger},
		Users:     &UserService{users: st.Users, logger: logger},
		Rates:     &RateService{rates: st.Rates, defaults: defaults, logger: logger},
		Alerts:    &AlertsService{jewelry: st.Jewelry},
		Analytics: &AnalyticsService{store: st.Analytics, logger: logger},
	}
}
