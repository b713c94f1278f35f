package customers

import "errors"

// ErrNotFound indicates the customer does not exist.
var ErrNotFound = errors.New("customer not found")
