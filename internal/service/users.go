package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/charankumarpalimara/jewelstock/internal/auth"
	"github.com/charankumarpalimara/jewelstock/internal/models"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

// UserService manages staff accounts. Password hashes never leave
// this layer: every returned User carries an empty Password field.
type UserService struct {
	users  store.UserStore
	logger *zap.Logger
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Password = ""
	return u, nil
}

// Authenticate verifies credentials for login. Inactive accounts are
// rejected the same way as bad credentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !u.IsActive || !auth.CheckPassword(u.Password, password) {
		return nil, store.ErrNotFound
	}
	u.Password = ""
	return u, nil
}

func (s *UserService) Create(ctx context.Context, input *models.UserInput) (*models.User, error) {
	role := input.Role
	if role == "" {
		role = models.RoleWorker
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     role,
		Phone:    input.Phone,
		IsActive: true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.Int64("id", u.ID), zap.String("role", u.Role))

	u.Password = ""
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id int64, input *models.UserUpdateInput) (*models.User, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.Role != nil {
		if !models.ValidRole(*input.Role) {
			return nil, ErrInvalidRole
		}
		u.Role = *input.Role
	}
	if input.Phone != nil {
		u.Phone = input.Phone
	}
	if input.IsActive != nil {
		u.IsActive = *input.IsActive
	}
	// An empty password leaves the credential untouched
	if input.Password != nil && *input.Password != "" {
		hashed, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hashed
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	u.Password = ""
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	deleted, err := s.users.BulkDelete(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.logger.Info("bulk user delete", zap.Int("requested", len(ids)), zap.Int64("deleted", deleted))
	return deleted, nil
}

// ToggleStatus flips the account's active flag
func (s *UserService) ToggleStatus(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsActive = !u.IsActive
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	u.Password = ""
	return u, nil
}
