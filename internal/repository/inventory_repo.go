package repository

import (
	"context"

	"equipmentrental/internal/domain"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// The inventory key is the equipment id the caller supplies, so the
// column must not auto-increment.
type inventoryModel struct {
	EquipmentID int64 `gorm:"column:equipment_id;primaryKey;autoIncrement:false"`
	Total       int   `gorm:"column:total;not null"`
	Rented      int   `gorm:"column:rented;not null"`
}

func (inventoryModel) TableName() string { return "inventory" }

func toDomainInventory(m inventoryModel) *domain.Inventory {
	return &domain.Inventory{
		EquipmentID: m.EquipmentID,
		Total:       m.Total,
		Rented:      m.Rented,
	}
}

func toInventoryModel(i *domain.Inventory) inventoryModel {
	return inventoryModel{
		EquipmentID: i.EquipmentID,
		Total:       i.Total,
		Rented:      i.Rented,
	}
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.Inventory, error) {
	var ms []inventoryModel
	tx := r.db.WithContext(ctx).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Inventory, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainInventory(m))
	}
	return out, nil
}

func (r *InventoryRepository) GetByEquipmentID(ctx context.Context, equipmentID int64) (*domain.Inventory, error) {
	var m inventoryModel
	tx := r.db.WithContext(ctx).First(&m, "equipment_id = ?", equipmentID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainInventory(m), nil
}

func (r *InventoryRepository) Create(ctx context.Context, i *domain.Inventory) error {
	m := toInventoryModel(i)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainInventory(m)
	return nil
}

func (r *InventoryRepository) Update(ctx context.Context, i *domain.Inventory) error {
	m := toInventoryModel(i)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *InventoryRepository) Delete(ctx context.Context, equipmentID int64) error {
	tx := r.db.WithContext(ctx).Delete(&inventoryModel{}, "equipment_id = ?", equipmentID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
