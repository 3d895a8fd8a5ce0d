package repository

import (
	"context"

	"equipmentrental/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	FirstName string `gorm:"column:f_name;not null"`
	LastName  string `gorm:"column:l_name;not null"`
	Address   string `gorm:"column:address;not null"`
	City      string `gorm:"column:city;not null"`
	State     string `gorm:"column:state;size:5;not null"`
	Phone     string `gorm:"column:phone;size:12;not null"`
}

func (customerModel) TableName() string { return "customers" }

func toDomainCustomer(m customerModel) *domain.Customer {
	return &domain.Customer{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Address:   m.Address,
		City:      m.City,
		State:     m.State,
		Phone:     m.Phone,
	}
}

func toCustomerModel(c *domain.Customer) customerModel {
	return customerModel{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Phone:     c.Phone,
	}
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var ms []customerModel
	tx := r.db.WithContext(ctx).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Customer, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainCustomer(m))
	}
	return out, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&customerModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
