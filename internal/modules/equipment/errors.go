package equipment

import "errors"

var ErrNotFound = errors.New("equipment not found")
