package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

type SQLCustomerStore struct {
	db *sqlx.DB
}

func NewSQLCustomerStore(db *sqlx.DB) *SQLCustomerStore {
	return &SQLCustomerStore{db: db}
}

var _ CustomerStore = (*SQLCustomerStore)(nil)

func (s *SQLCustomerStore) List(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	query := `
		SELECT id, name, email, phone, address, last_purchase_date, created_at, updated_at
		FROM customers ORDER BY created_at DESC`
	if err := s.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *SQLCustomerStore) Get(ctx context.Context, id int64) (*models.Customer, error) {
	var c models.Customer
	query := `
		SELECT id, name, email, phone, address, last_purchase_date, created_at, updated_at
		FROM customers WHERE id = ?`
	if err := s.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQLCustomerStore) Create(ctx context.Context, c *models.Customer) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO customers (name, email, phone, address)
		VALUES (?, ?, ?, ?)
	`, c.Name, c.Email, c.Phone, c.Address)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	c.ID, err = res.LastInsertId()
	return err
}

func (s *SQLCustomerStore) Update(ctx context.Context, c *models.Customer) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE customers SET name = ?, email = ?, phone = ?, address = ?
		WHERE id = ?
	`, c.Name, c.Email, c.Phone, c.Address, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLCustomerStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
