package domain

// Inventory tracks unit counts for one equipment kind. It is keyed by
// the equipment id, supplied by the caller rather than the store.
// Rented is not constrained against Total.
type Inventory struct {
	EquipmentID int64 `json:"equipment_id"`
	Total       int   `json:"total"`
	Rented      int   `json:"rented"`
}
