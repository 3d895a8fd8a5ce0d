package rental

// Ids and quantity are pointers so absence is detectable; dates are
// YYYY-MM-DD strings, parsed only by the pricing computation.

type CreateRentalRequest struct {
	CustomerID  *int64 `json:"customer_id" validate:"required"`
	EquipmentID *int64 `json:"equipment_id" validate:"required"`
	Quantity    *int   `json:"quantity" validate:"required"`
	Start       string `json:"start" validate:"required"`
	End         string `json:"end" validate:"required"`
}

type UpdateRentalRequest struct {
	CustomerID  *int64 `json:"customer_id" validate:"required"`
	EquipmentID *int64 `json:"equipment_id" validate:"required"`
	Quantity    *int   `json:"quantity" validate:"required"`
	Start       string `json:"start" validate:"required"`
	End         string `json:"end" validate:"required"`
}
