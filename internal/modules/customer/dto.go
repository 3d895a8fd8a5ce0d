package customer

type CreateCustomerRequest struct {
	FirstName string `json:"f_name" validate:"required"`
	LastName  string `json:"l_name" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

type UpdateCustomerRequest struct {
	FirstName string `json:"f_name" validate:"required"`
	LastName  string `json:"l_name" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}
