package models

import (
	"time"
)

type Customer struct {
	ID               int64      `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	Email            *string    `json:"email,omitempty" db:"email"`
	Phone            *string    `json:"phone,omitempty" db:"phone"`
	Address          *string    `json:"address,omitempty" db:"address"`
	LastPurchaseDate *time.Time `json:"lastPurchaseDate" db:"last_purchase_date"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
}

// CustomerInput holds data for creating/updating a customer
type CustomerInput struct {
	Name    string  `json:"name" binding:"required,min=2"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}
