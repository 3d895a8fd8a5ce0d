package inventory

// Counts are pointers: zero is a legal value (a fresh item has rented 0),
// while an absent field must be rejected, never defaulted.

type CreateInventoryRequest struct {
	EquipmentID *int64 `json:"equipment_id" validate:"required"`
	Total       *int   `json:"total" validate:"required"`
	Rented      *int   `json:"rented" validate:"required"`
}

type UpdateInventoryRequest struct {
	EquipmentID *int64 `json:"equipment_id" validate:"required"`
	Total       *int   `json:"total" validate:"required"`
	Rented      *int   `json:"rented" validate:"required"`
}
