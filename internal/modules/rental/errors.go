package rental

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation error")
)
