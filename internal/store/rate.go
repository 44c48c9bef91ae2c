package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

type SQLRateStore struct {
	db *sqlx.DB
}

func NewSQLRateStore(db *sqlx.DB) *SQLRateStore {
	return &SQLRateStore{db: db}
}

var _ RateStore = (*SQLRateStore)(nil)

func (s *SQLRateStore) Latest(ctx context.Context) (*models.Rate, error) {
	var r models.Rate
	query := `
		SELECT id, gold, silver, created_at, updated_at
		FROM rates ORDER BY created_at DESC, id DESC LIMIT 1`
	if err := s.db.GetContext(ctx, &r, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *SQLRateStore) Create(ctx context.Context, r *models.Rate) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO rates (gold, silver) VALUES (?, ?)", r.Gold, r.Silver)
	if err != nil {
		return fmt.Errorf("failed to create rate: %w", err)
	}
	r.ID, err = res.LastInsertId()
	return err
}

func (s *SQLRateStore) Update(ctx context.Context, r *models.Rate) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE rates SET gold = ?, silver = ? WHERE id = ?", r.Gold, r.Silver, r.ID)
	if err != nil {
		return fmt.Errorf("failed to update rate: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLRateStore) History(ctx context.Context, limit int) ([]models.Rate, error) {
	rates := []models.Rate{}
	query := `
		SELECT id, gold, silver, created_at, updated_at
		FROM rates ORDER BY created_at DESC, id DESC LIMIT ?`
	if err := s.db.SelectContext(ctx, &rates, query, limit); err != nil {
		return nil, fmt.Errorf("failed to load rate history: %w", err)
	}
	return rates, nil
}
