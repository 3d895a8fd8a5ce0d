package inventory

import (
	"context"
	"errors"
	"strings"

	"equipmentrental/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Inventory, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByEquipmentID(ctx context.Context, equipmentID int64) (*domain.Inventory, error) {
	inv, err := s.repo.GetByEquipmentID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

// Create persists a new inventory row keyed by the caller-supplied
// equipment id. Rented is not checked against Total.
func (s *Service) Create(ctx context.Context, req CreateInventoryRequest) (*domain.Inventory, error) {
	inv := &domain.Inventory{
		EquipmentID: *req.EquipmentID,
		Total:       *req.Total,
		Rented:      *req.Rented,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return inv, nil
}

func (s *Service) Update(ctx context.Context, equipmentID int64, req UpdateInventoryRequest) (*domain.Inventory, error) {
	if _, err := s.repo.GetByEquipmentID(ctx, equipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	inv := &domain.Inventory{
		EquipmentID: equipmentID,
		Total:       *req.Total,
		Rented:      *req.Rented,
	}
	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) Delete(ctx context.Context, equipmentID int64) error {
	if err := s.repo.Delete(ctx, equipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// the CGO-free sqlite driver reports unique violations gorm cannot translate
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
