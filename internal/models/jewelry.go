package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is a JSON-encoded string array column
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

type Jewelry struct {
	ID                int64      `json:"id" db:"id"`
	SKU               string     `json:"sku" db:"sku"`
	Name              string     `json:"name" db:"name"`
	Category          string     `json:"category" db:"category"`
	Subtype           *string    `json:"subtype,omitempty" db:"subtype"`
	Description       *string    `json:"description,omitempty" db:"description"`
	Quantity          int        `json:"quantity" db:"quantity"`
	UnitPrice         float64    `json:"unitPrice" db:"unit_price"`
	CostPrice         float64    `json:"costPrice" db:"cost_price"`
	MetalType         *string    `json:"metalType,omitempty" db:"metal_type"`
	MetalWeight       *float64   `json:"metalWeight,omitempty" db:"metal_weight"`
	StoneType         *string    `json:"stoneType,omitempty" db:"stone_type"`
	StoneWeight       *float64   `json:"stoneWeight,omitempty" db:"stone_weight"`
	Gemstone          *string    `json:"gemstone,omitempty" db:"gemstone"`
	Weight            *float64   `json:"weight,omitempty" db:"weight"`
	Size              *string    `json:"size,omitempty" db:"size"`
	Color             *string    `json:"color,omitempty" db:"color"`
	MakingCharges     *float64   `json:"makingCharges,omitempty" db:"making_charges"`
	Wastage           *float64   `json:"wastage,omitempty" db:"wastage"`
	LaborCost         *float64   `json:"laborCost,omitempty" db:"labor_cost"`
	OtherCosts        *float64   `json:"otherCosts,omitempty" db:"other_costs"`
	Images            StringList `json:"images" db:"images"`
	Tags              StringList `json:"tags" db:"tags"`
	Notes             *string    `json:"notes,omitempty" db:"notes"`
	Status            string     `json:"status" db:"status"`
	IsActive          bool       `json:"isActive" db:"is_active"`
	LowStockThreshold int        `json:"lowStockThreshold" db:"low_stock_threshold"`
	MinStockLevel     int        `json:"minStockLevel" db:"min_stock_level"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`
}

// JewelryInput holds data for creating a jewelry item
type JewelryInput struct {
	SKU               string   `json:"sku" form:"sku" binding:"required"`
	Name              string   `json:"name" form:"name" binding:"required,min=2"`
	Category          string   `json:"category" form:"category" binding:"required"`
	Subtype           *string  `json:"subtype" form:"subtype"`
	Description       *string  `json:"description" form:"description"`
	Quantity          *int     `json:"quantity" form:"quantity" binding:"omitempty,min=0"`
	UnitPrice         float64  `json:"unitPrice" form:"unitPrice" binding:"min=0"`
	CostPrice         float64  `json:"costPrice" form:"costPrice" binding:"min=0"`
	MetalType         *string  `json:"metalType" form:"metalType"`
	MetalWeight       *float64 `json:"metalWeight" form:"metalWeight"`
	StoneType         *string  `json:"stoneType" form:"stoneType"`
	StoneWeight       *float64 `json:"stoneWeight" form:"stoneWeight"`
	Gemstone          *string  `json:"gemstone" form:"gemstone"`
	Weight            *float64 `json:"weight" form:"weight"`
	Size              *string  `json:"size" form:"size"`
	Color             *string  `json:"color" form:"color"`
	MakingCharges     *float64 `json:"makingCharges" form:"makingCharges"`
	Wastage           *float64 `json:"wastage" form:"wastage"`
	LaborCost         *float64 `json:"laborCost" form:"laborCost"`
	OtherCosts        *float64 `json:"otherCosts" form:"otherCosts"`
	Tags              []string `json:"tags" form:"tags"`
	Notes             *string  `json:"notes" form:"notes"`
	Status            *string  `json:"status" form:"status"`
	IsActive          *bool    `json:"isActive" form:"isActive"`
	LowStockThreshold *int     `json:"lowStockThreshold" form:"lowStockThreshold"`
	MinStockLevel     *int     `json:"minStockLevel" form:"minStockLevel"`
}

// JewelryUpdateInput holds a partial jewelry update; only the fields
// present in the request are applied
type JewelryUpdateInput struct {
	SKU               *string  `json:"sku" form:"sku"`
	Name              *string  `json:"name" form:"name" binding:"omitempty,min=2"`
	Category          *string  `json:"category" form:"category"`
	Subtype           *string  `json:"subtype" form:"subtype"`
	Description       *string  `json:"description" form:"description"`
	Quantity          *int     `json:"quantity" form:"quantity" binding:"omitempty,min=0"`
	UnitPrice         *float64 `json:"unitPrice" form:"unitPrice" binding:"omitempty,min=0"`
	CostPrice         *float64 `json:"costPrice" form:"costPrice" binding:"omitempty,min=0"`
	MetalType         *string  `json:"metalType" form:"metalType"`
	MetalWeight       *float64 `json:"metalWeight" form:"metalWeight"`
	StoneType         *string  `json:"stoneType" form:"stoneType"`
	StoneWeight       *float64 `json:"stoneWeight" form:"stoneWeight"`
	Gemstone          *string  `json:"gemstone" form:"gemstone"`
	Weight            *float64 `json:"weight" form:"weight"`
	Size              *string  `json:"size" form:"size"`
	Color             *string  `json:"color" form:"color"`
	MakingCharges     *float64 `json:"makingCharges" form:"makingCharges"`
	Wastage           *float64 `json:"wastage" form:"wastage"`
	LaborCost         *float64 `json:"laborCost" form:"laborCost"`
	OtherCosts        *float64 `json:"otherCosts" form:"otherCosts"`
	Tags              []string `json:"tags" form:"tags"`
	Notes             *string  `json:"notes" form:"notes"`
	Status            *string  `json:"status" form:"status"`
	IsActive          *bool    `json:"isActive" form:"isActive"`
	LowStockThreshold *int     `json:"lowStockThreshold" form:"lowStockThreshold" binding:"omitempty,min=0"`
	MinStockLevel     *int     `json:"minStockLevel" form:"minStockLevel" binding:"omitempty,min=0"`
}

// JewelryFilter narrows a jewelry listing
type JewelryFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// Jewelry categories
const (
	CategoryRings     = "rings"
	CategoryNecklaces = "necklaces"
	CategoryEarrings  = "earrings"
	CategoryBracelets = "bracelets"
	CategoryWatches   = "watches"
	CategoryOther     = "other"
)

// Jewelry statuses
const (
	JewelryStatusActive   = "active"
	JewelryStatusInactive = "inactive"
	JewelryStatusSold     = "sold"
)

// ValidCategory reports whether c is one of the known categories
func ValidCategory(c string) bool {
	switch c {
	case CategoryRings, CategoryNecklaces, CategoryEarrings,
		CategoryBracelets, CategoryWatches, CategoryOther,
		"jewelry", "repair", "order":
		return true
	}
	return false
}
