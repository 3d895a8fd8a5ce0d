package rental

import (
	"context"

	"equipmentrental/internal/domain"
)

// Repository defines the store operations for rental records.
type Repository interface {
	List(ctx context.Context) ([]domain.Rental, error)
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	Create(ctx context.Context, r *domain.Rental) error
	Update(ctx context.Context, r *domain.Rental) error
	Delete(ctx context.Context, id int64) error
}

// CustomerRepository is the slice of the customer store pricing needs.
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// EquipmentRepository is the slice of the equipment store pricing needs.
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}
