package repository

import (
	"context"

	"equipmentrental/internal/domain"

	"gorm.io/gorm"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

// Start and End stay as YYYY-MM-DD strings end to end; the service layer
// parses them only when it needs a day count.
type rentalModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	CustomerID  int64  `gorm:"column:customer_id;not null"`
	EquipmentID int64  `gorm:"column:equipment_id;not null"`
	Quantity    int    `gorm:"column:quantity;not null"`
	Start       string `gorm:"column:start;not null"`
	End         string `gorm:"column:end;not null"`
}

func (rentalModel) TableName() string { return "rentals" }

func toDomainRental(m rentalModel) *domain.Rental {
	return &domain.Rental{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		EquipmentID: m.EquipmentID,
		Quantity:    m.Quantity,
		Start:       m.Start,
		End:         m.End,
	}
}

func toRentalModel(rt *domain.Rental) rentalModel {
	return rentalModel{
		ID:          rt.ID,
		CustomerID:  rt.CustomerID,
		EquipmentID: rt.EquipmentID,
		Quantity:    rt.Quantity,
		Start:       rt.Start,
		End:         rt.End,
	}
}

func (r *RentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	var ms []rentalModel
	tx := r.db.WithContext(ctx).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Rental, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRental(m))
	}
	return out, nil
}

func (r *RentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	var m rentalModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRental(m), nil
}

func (r *RentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	m := toRentalModel(rt)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rt = *toDomainRental(m)
	return nil
}

func (r *RentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	m := toRentalModel(rt)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *RentalRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&rentalModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
