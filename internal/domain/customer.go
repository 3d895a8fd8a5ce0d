package domain

type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"f_name"`
	LastName  string `json:"l_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Phone     string `json:"phone"`
}
