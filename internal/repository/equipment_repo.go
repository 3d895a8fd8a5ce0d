package repository

import (
	"context"

	"equipmentrental/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;not null"`
	Price       float64 `gorm:"column:price;not null"`
	Category    string  `gorm:"column:category;not null"`
	Description string  `gorm:"column:description;not null"`
}

func (equipmentModel) TableName() string { return "equipment" }

func toDomainEquipment(m equipmentModel) *domain.Equipment {
	return &domain.Equipment{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Category:    m.Category,
		Description: m.Description,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	return equipmentModel{
		ID:          e.ID,
		Name:        e.Name,
		Price:       e.Price,
		Category:    e.Category,
		Description: e.Description,
	}
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var ms []equipmentModel
	tx := r.db.WithContext(ctx).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Equipment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainEquipment(m))
	}
	return out, nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEquipment(m), nil
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEquipment(m)
	return nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&equipmentModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
