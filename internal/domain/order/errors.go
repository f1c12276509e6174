package order

import "errors"

var (
	ErrNotFound        = errors.New("order not found")
	ErrMissingField    = errors.New("missing product_id or quantity")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidPrice    = errors.New("price must not be negative")
)
