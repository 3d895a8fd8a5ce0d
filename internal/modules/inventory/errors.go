package inventory

import "errors"

var (
	ErrNotFound      = errors.New("inventory item not found")
	ErrAlreadyExists = errors.New("inventory item already exists")
)
