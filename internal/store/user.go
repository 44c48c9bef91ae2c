package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

const userColumns = "id, name, email, password, role, phone, is_active, created_at, updated_at"

type SQLUserStore struct {
	db *sqlx.DB
}

func NewSQLUserStore(db *sqlx.DB) *SQLUserStore {
	return &SQLUserStore{db: db}
}

var _ UserStore = (*SQLUserStore)(nil)

func (s *SQLUserStore) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at DESC", userColumns)
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *SQLUserStore) Get(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = ?", userColumns)
	if err := s.db.GetContext(ctx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *SQLUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = ?", userColumns)
	if err := s.db.GetContext(ctx, &u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *SQLUserStore) Create(ctx context.Context, u *models.User) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (name, email, password, role, phone, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.Name, u.Email, u.Password, u.Role, u.Phone, u.IsActive)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.ID, err = res.LastInsertId()
	return err
}

func (s *SQLUserStore) Update(ctx context.Context, u *models.User) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET name = ?, email = ?, password = ?, role = ?, phone = ?, is_active = ?
		WHERE id = ?
	`, u.Name, u.Email, u.Password, u.Role, u.Phone, u.IsActive, u.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLUserStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLUserStore) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM users WHERE id IN (?)", ids)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete users: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLUserStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
