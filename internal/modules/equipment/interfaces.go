package equipment

import (
	"context"

	"equipmentrental/internal/domain"
)

// Repository defines the store operations the equipment service needs.
type Repository interface {
	List(ctx context.Context) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Create(ctx context.Context, e *domain.Equipment) error
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
}
