package rental

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"equipmentrental/internal/domain"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	rentals   Repository
	customers CustomerRepository
	equipment EquipmentRepository
}

func NewService(rentals Repository, customers CustomerRepository, equipment EquipmentRepository) *Service {
	return &Service{
		rentals:   rentals,
		customers: customers,
		equipment: equipment,
	}
}

// Receipt is the outcome of creating a rental: the persisted record plus
// the cost computed from it. The cost itself is never stored.
type Receipt struct {
	Rental            *domain.Rental
	CustomerFirstName string
	Days              int
	TotalCost         float64
}

func (r Receipt) Message() string {
	total := strconv.FormatFloat(r.TotalCost, 'f', -1, 64)
	return fmt.Sprintf("Entry added to the system rentals.  %s owes $%s for %d days of use.",
		r.CustomerFirstName, total, r.Days)
}

func (s *Service) List(ctx context.Context) ([]domain.Rental, error) {
	return s.rentals.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rt, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return rt, nil
}

// Create prices and persists a rental. The customer and equipment lookups
// double as the only existence checks: a dangling reference surfaces as
// the store's not-found error. Days may be zero or negative; neither the
// day count nor inventory availability is validated.
func (s *Service) Create(ctx context.Context, req CreateRentalRequest) (*Receipt, error) {
	start, err := time.Parse(dateLayout, req.Start)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.Parse(dateLayout, req.End)
	if err != nil {
		return nil, ErrValidation
	}

	cu, err := s.customers.GetByID(ctx, *req.CustomerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	eq, err := s.equipment.GetByID(ctx, *req.EquipmentID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	days := int(end.Sub(start).Hours() / 24)
	total := eq.Price * float64(days) * float64(*req.Quantity)

	rt := &domain.Rental{
		CustomerID:  *req.CustomerID,
		EquipmentID: *req.EquipmentID,
		Quantity:    *req.Quantity,
		Start:       req.Start,
		End:         req.End,
	}
	if err := s.rentals.Create(ctx, rt); err != nil {
		return nil, err
	}

	return &Receipt{
		Rental:            rt,
		CustomerFirstName: cu.FirstName,
		Days:              days,
		TotalCost:         total,
	}, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRentalRequest) (*domain.Rental, error) {
	if _, err := s.rentals.GetByID(ctx, id); err != nil {
		return nil, mapNotFound(err)
	}

	rt := &domain.Rental{
		ID:          id,
		CustomerID:  *req.CustomerID,
		EquipmentID: *req.EquipmentID,
		Quantity:    *req.Quantity,
		Start:       req.Start,
		End:         req.End,
	}
	if err := s.rentals.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.rentals.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
