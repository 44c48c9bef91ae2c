package models

import (
	"time"
)

type Rate struct {
	ID        int64     `json:"id" db:"id"`
	Gold      float64   `json:"gold" db:"gold"`
	Silver    float64   `json:"silver" db:"silver"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// RateInput holds data for updating the current metal rates
type RateInput struct {
	Gold   float64 `json:"gold" binding:"required,min=0"`
	Silver float64 `json:"silver" binding:"required,min=0"`
}
