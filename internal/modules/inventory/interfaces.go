package inventory

import (
	"context"

	"equipmentrental/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Inventory, error)
	GetByEquipmentID(ctx context.Context, equipmentID int64) (*domain.Inventory, error)
	Create(ctx context.Context, i *domain.Inventory) error
	Update(ctx context.Context, i *domain.Inventory) error
	Delete(ctx context.Context, equipmentID int64) error
}
