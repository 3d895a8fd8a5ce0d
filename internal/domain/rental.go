package domain

// Rental records one lease of equipment to a customer. Start and End
// are calendar dates in YYYY-MM-DD form with no time component. The
// customer and equipment references are by id only; no referential
// integrity is enforced here.
type Rental struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customer_id"`
	EquipmentID int64  `json:"equipment_id"`
	Quantity    int    `json:"quantity"`
	Start       string `json:"start"`
	End         string `json:"end"`
}
