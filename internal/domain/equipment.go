package domain

// Equipment is a rentable item in the catalog. Price is the per-day
// rental rate.
type Equipment struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}
