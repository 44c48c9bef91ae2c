package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/charankumarpalimara/jewelstock/internal/models"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

// RateService exposes the current precious-metal quote and its history.
// Updates overwrite the latest row in place rather than appending, so
// routine rate changes do not grow the history; new history rows only
// appear through direct creation (first write, seeding).
type RateService struct {
	rates    store.RateStore
	defaults RateDefaults
	logger   *zap.Logger
}

// Quote is one metal price with its update timestamp
type Quote struct {
	Price       float64   `json:"price"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Quotes is the current rate pair
type Quotes struct {
	Gold   Quote `json:"gold"`
	Silver Quote `json:"silver"`
}

// Current returns the latest rate record, falling back to configured
// defaults when none exists.
func (s *RateService) Current(ctx context.Context) (*Quotes, error) {
	rate, err := s.rates.Latest(ctx)
	if errors.Is(err, store.ErrNotFound) {
		now := time.Now().UTC()
		return &Quotes{
			Gold:   Quote{Price: s.defaults.Gold, LastUpdated: now},
			Silver: Quote{Price: s.defaults.Silver, LastUpdated: now},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &Quotes{
		Gold:   Quote{Price: rate.Gold, LastUpdated: rate.UpdatedAt},
		Silver: Quote{Price: rate.Silver, LastUpdated: rate.UpdatedAt},
	}, nil
}

// Update overwrites the latest record, or creates the first one on an
// empty table.
func (s *RateService) Update(ctx context.Context, input *models.RateInput) (*Quotes, error) {
	rate, err := s.rates.Latest(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		rate = &models.Rate{Gold: input.Gold, Silver: input.Silver}
		if err := s.rates.Create(ctx, rate); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		rate.Gold = input.Gold
		rate.Silver = input.Silver
		if err := s.rates.Update(ctx, rate); err != nil {
			return nil, err
		}
		rate.UpdatedAt = time.Now().UTC()
	}

	s.logger.Info("rates updated", zap.Float64("gold", rate.Gold), zap.Float64("silver", rate.Silver))
	return &Quotes{
		Gold:   Quote{Price: rate.Gold, LastUpdated: rate.UpdatedAt},
		Silver: Quote{Price: rate.Silver, LastUpdated: rate.UpdatedAt},
	}, nil
}

// History returns the most recent 50 rate records, newest first
func (s *RateService) History(ctx context.Context) ([]models.Rate, error) {
	return s.rates.History(ctx, 50)
}
