package models

import (
	"fmt"
	"time"
)

type Sale struct {
	ID            int64      `json:"id" db:"id"`
	SaleNumber    string     `json:"saleNumber" db:"sale_number"`
	CustomerID    *int64     `json:"customerId" db:"customer_id"`
	Subtotal      float64    `json:"subtotal" db:"subtotal"`
	Discount      float64    `json:"discount" db:"discount"`
	Tax           float64    `json:"tax" db:"tax"`
	TotalAmount   float64    `json:"totalAmount" db:"total_amount"`
	PaymentMethod string     `json:"paymentMethod" db:"payment_method"`
	PaymentStatus string     `json:"paymentStatus" db:"payment_status"`
	PaidAmount    float64    `json:"paidAmount" db:"paid_amount"`
	Status        string     `json:"status" db:"status"`
	Notes         *string    `json:"notes,omitempty" db:"notes"`
	SaleDate      time.Time  `json:"saleDate" db:"sale_date"`
	CreatedBy     *int64     `json:"createdBy" db:"created_by"`
	UpdatedBy     *int64     `json:"updatedBy" db:"updated_by"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`

	Items []SaleItem `json:"items" db:"-"`

	// Joined fields populated on reads
	CustomerName  *string `json:"customerName,omitempty" db:"customer_name"`
	CustomerEmail *string `json:"customerEmail,omitempty" db:"customer_email"`
}

type SaleItem struct {
	ID         int64   `json:"id" db:"id"`
	SaleID     int64   `json:"saleId" db:"sale_id"`
	JewelryID  int64   `json:"jewelryId" db:"jewelry_id"`
	Quantity   int     `json:"quantity" db:"quantity"`
	UnitPrice  float64 `json:"unitPrice" db:"unit_price"`
	TotalPrice float64 `json:"totalPrice" db:"total_price"`

	// Joined fields populated on reads
	JewelryName     *string `json:"jewelryName,omitempty" db:"jewelry_name"`
	JewelrySKU      *string `json:"jewelrySku,omitempty" db:"jewelry_sku"`
	JewelryCategory *string `json:"jewelryCategory,omitempty" db:"jewelry_category"`
}

// SaleInput holds data for creating a sale. TotalAmount is accepted
// for client payload compatibility but ignored; totals are always
// recomputed from the line items.
type SaleInput struct {
	JewelryID     int64   `json:"jewelryId" binding:"required"`
	CustomerID    *int64  `json:"customerId"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	UnitPrice     float64 `json:"unitPrice" binding:"min=0"`
	TotalAmount   float64 `json:"totalAmount" binding:"min=0"`
	Discount      float64 `json:"discount" binding:"min=0"`
	Tax           float64 `json:"tax" binding:"min=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	Notes         *string `json:"notes"`
}

// SaleUpdateInput holds data for updating a sale in place
type SaleUpdateInput struct {
	CustomerID    *int64   `json:"customerId"`
	Discount      *float64 `json:"discount"`
	Tax           *float64 `json:"tax"`
	PaymentMethod *string  `json:"paymentMethod"`
	PaymentStatus *string  `json:"paymentStatus"`
	PaidAmount    *float64 `json:"paidAmount"`
	Status        *string  `json:"status"`
	Notes         *string  `json:"notes"`
}

// SaleFilter narrows a sales listing
type SaleFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// SalesSummary is the aggregate view over a date window
type SalesSummary struct {
	TotalSales      float64 `json:"totalSales" db:"total_sales"`
	TotalQuantity   int     `json:"totalQuantity" db:"total_quantity"`
	AverageSale     float64 `json:"averageSale" db:"average_sale"`
	TotalSalesCount int     `json:"totalSalesCount" db:"total_sales_count"`
}

// Payment methods
const (
	PaymentCash         = "cash"
	PaymentCard         = "card"
	PaymentUPI          = "upi"
	PaymentBankTransfer = "bank_transfer"
	PaymentCheque       = "cheque"
)

// Payment statuses
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusPartial  = "partial"
	PaymentStatusRefunded = "refunded"
)

// Sale statuses
const (
	SaleStatusDraft     = "draft"
	SaleStatusConfirmed = "confirmed"
	SaleStatusShipped   = "shipped"
	SaleStatusDelivered = "delivered"
	SaleStatusCancelled = "cancelled"
)

// ValidPaymentMethod reports whether m is an accepted payment method
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentBankTransfer, PaymentCheque:
		return true
	}
	return false
}

// FormatSaleNumber renders the sequential human-readable sale identifier
func FormatSaleNumber(seq int64) string {
	return fmt.Sprintf("SALE-%06d", seq)
}

// RecalculateTotals re-derives line totals, subtotal and total amount.
// Called on every persist so the stored amounts can never drift from
// the line items.
func (s *Sale) RecalculateTotals() {
	if len(s.Items) == 0 {
		s.TotalAmount = s.Subtotal - s.Discount + s.Tax
		return
	}
	subtotal := 0.0
	for i := range s.Items {
		s.Items[i].TotalPrice = float64(s.Items[i].Quantity) * s.Items[i].UnitPrice
		subtotal += s.Items[i].TotalPrice
	}
	s.Subtotal = subtotal
	s.TotalAmount = subtotal - s.Discount + s.Tax
}
