package customer

import (
	"context"
	"errors"

	"equipmentrental/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	cu, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cu, nil
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	cu := &domain.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Phone:     req.Phone,
	}
	if err := s.repo.Create(ctx, cu); err != nil {
		return nil, err
	}
	return cu, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*domain.Customer, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cu := &domain.Customer{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Phone:     req.Phone,
	}
	if err := s.repo.Update(ctx, cu); err != nil {
		return nil, err
	}
	return cu, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
