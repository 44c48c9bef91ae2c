package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/charankumarpalimara/jewelstock/internal/models"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

// CustomerService manages customer contact records
type CustomerService struct {
	customers store.CustomerStore
	logger    *zap.Logger
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.customers.List(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	return s.customers.Get(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, input *models.CustomerInput) (*models.Customer, error) {
	c := &models.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("customer created", zap.Int64("id", c.ID))
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, input *models.CustomerInput) (*models.Customer, error) {
	existing, err := s.customers.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Email = input.Email
	existing.Phone = input.Phone
	existing.Address = input.Address

	if err := s.customers.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.customers.Delete(ctx, id)
}
