package customer

import (
	"context"
	"testing"

	"equipmentrental/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 3 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_RoundTrip(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := NewService(repo)

	cu, err := service.Create(context.Background(), CreateCustomerRequest{
		FirstName: "John",
		LastName:  "Dewey",
		Address:   "123 South St.",
		City:      "Somewhere",
		State:     "MI",
		Phone:     "123-456-7890",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), cu.ID)
	assert.Equal(t, "John", cu.FirstName)
	assert.Equal(t, "MI", cu.State)
	repo.AssertExpectations(t)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)
	service := NewService(repo)

	_, err := service.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Delete", mock.Anything, int64(42)).Return(gorm.ErrRecordNotFound)
	service := NewService(repo)

	err := service.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}
