package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/charankumarpalimara/jewelstock/internal/models"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

// InventoryService manages jewelry stock records
type InventoryService struct {
	jewelry store.JewelryStore
	logger  *zap.Logger
}

// JewelryPage is one page of a jewelry listing
type JewelryPage struct {
	Jewelry     []models.Jewelry `json:"jewelry"`
	Total       int              `json:"total"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

func (s *InventoryService) List(ctx context.Context, f models.JewelryFilter) (*JewelryPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	items, total, err := s.jewelry.List(ctx, f)
	if err != nil {
		return nil, err
	}

	totalPages := (total + f.Limit - 1) / f.Limit
	return &JewelryPage{
		Jewelry:     items,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: f.Page,
	}, nil
}

func (s *InventoryService) Get(ctx context.Context, id int64) (*models.Jewelry, error) {
	return s.jewelry.Get(ctx, id)
}

// Create applies creation defaults: quantity 1 when unspecified,
// status active, isActive true unless explicitly false.
func (s *InventoryService) Create(ctx context.Context, input *models.JewelryInput, images []string) (*models.Jewelry, error) {
	if !models.ValidCategory(input.Category) {
		return nil, ErrInvalidCategory
	}

	j := jewelryFromInput(input)
	j.Images = images
	if input.Quantity == nil {
		j.Quantity = 1
	}
	if input.Status == nil {
		j.Status = models.JewelryStatusActive
	}
	if input.IsActive == nil {
		j.IsActive = true
	}
	if input.LowStockThreshold == nil {
		j.LowStockThreshold = 10
	}
	if input.MinStockLevel == nil {
		j.MinStockLevel = 5
	}

	if err := s.jewelry.Create(ctx, j); err != nil {
		return nil, err
	}
	s.logger.Info("jewelry created", zap.Int64("id", j.ID), zap.String("sku", j.SKU))
	return j, nil
}

// Update applies the provided fields to the existing record; fields
// absent from the input stay untouched. New image attachments replace
// the stored set.
func (s *InventoryService) Update(ctx context.Context, id int64, input *models.JewelryUpdateInput, images []string) (*models.Jewelry, error) {
	if input.Category != nil && !models.ValidCategory(*input.Category) {
		return nil, ErrInvalidCategory
	}

	j, err := s.jewelry.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyJewelryUpdate(j, input)
	if len(images) > 0 {
		j.Images = images
	}

	if err := s.jewelry.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	return s.jewelry.Delete(ctx, id)
}

func (s *InventoryService) Categories(ctx context.Context) ([]string, error) {
	return s.jewelry.Categories(ctx)
}

// BulkResult reports how many records a bulk operation touched
type BulkResult struct {
	Operation     string `json:"operation"`
	AffectedCount int64  `json:"affectedCount"`
}

// Bulk applies one mutation to every listed record. Missing ids are
// skipped, not errors; the count reflects records actually touched.
func (s *InventoryService) Bulk(ctx context.Context, operation string, ids []int64, update store.JewelryBulkUpdate) (*BulkResult, error) {
	var (
		affected int64
		err      error
	)
	switch operation {
	case "delete":
		affected, err = s.jewelry.BulkDelete(ctx, ids)
	case "update":
		affected, err = s.jewelry.BulkUpdate(ctx, ids, update)
	default:
		return nil, ErrUnknownBulkOperation
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info("bulk jewelry operation",
		zap.String("operation", operation),
		zap.Int("requested", len(ids)),
		zap.Int64("affected", affected))
	return &BulkResult{Operation: operation, AffectedCount: affected}, nil
}

func applyJewelryUpdate(j *models.Jewelry, input *models.JewelryUpdateInput) {
	if input.SKU != nil {
		j.SKU = *input.SKU
	}
	if input.Name != nil {
		j.Name = *input.Name
	}
	if input.Category != nil {
		j.Category = *input.Category
	}
	if input.Subtype != nil {
		j.Subtype = input.Subtype
	}
	if input.Description != nil {
		j.Description = input.Description
	}
	if input.Quantity != nil {
		j.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		j.UnitPrice = *input.UnitPrice
	}
	if input.CostPrice != nil {
		j.CostPrice = *input.CostPrice
	}
	if input.MetalType != nil {
		j.MetalType = input.MetalType
	}
	if input.MetalWeight != nil {
		j.MetalWeight = input.MetalWeight
	}
	if input.StoneType != nil {
		j.StoneType = input.StoneType
	}
	if input.StoneWeight != nil {
		j.StoneWeight = input.StoneWeight
	}
	if input.Gemstone != nil {
		j.Gemstone = input.Gemstone
	}
	if input.Weight != nil {
		j.Weight = input.Weight
	}
	if input.Size != nil {
		j.Size = input.Size
	}
	if input.Color != nil {
		j.Color = input.Color
	}
	if input.MakingCharges != nil {
		j.MakingCharges = input.MakingCharges
	}
	if input.Wastage != nil {
		j.Wastage = input.Wastage
	}
	if input.LaborCost != nil {
		j.LaborCost = input.LaborCost
	}
	if input.OtherCosts != nil {
		j.OtherCosts = input.OtherCosts
	}
	if input.Tags != nil {
		j.Tags = input.Tags
	}
	if input.Notes != nil {
		j.Notes = input.Notes
	}
	if input.Status != nil {
		j.Status = *input.Status
	}
	if input.IsActive != nil {
		j.IsActive = *input.IsActive
	}
	if input.LowStockThreshold != nil {
		j.LowStockThreshold = *input.LowStockThreshold
	}
	if input.MinStockLevel != nil {
		j.MinStockLevel = *input.MinStockLevel
	}
}

func jewelryFromInput(input *models.JewelryInput) *models.Jewelry {
	j := &models.Jewelry{
		SKU:           input.SKU,
		Name:          input.Name,
		Category:      input.Category,
		Subtype:       input.Subtype,
		Description:   input.Description,
		UnitPrice:     input.UnitPrice,
		CostPrice:     input.CostPrice,
		MetalType:     input.MetalType,
		MetalWeight:   input.MetalWeight,
		StoneType:     input.StoneType,
		StoneWeight:   input.StoneWeight,
		Gemstone:      input.Gemstone,
		Weight:        input.Weight,
		Size:          input.Size,
		Color:         input.Color,
		MakingCharges: input.MakingCharges,
		Wastage:       input.Wastage,
		LaborCost:     input.LaborCost,
		OtherCosts:    input.OtherCosts,
		Tags:          input.Tags,
		Notes:         input.Notes,
	}
	if input.Quantity != nil {
		j.Quantity = *input.Quantity
	}
	if input.Status != nil {
		j.Status = *input.Status
	}
	if input.IsActive != nil {
		j.IsActive = *input.IsActive
	}
	if input.LowStockThreshold != nil {
		j.LowStockThreshold = *input.LowStockThreshold
	}
	if input.MinStockLevel != nil {
		j.MinStockLevel = *input.MinStockLevel
	}
	return j
}
