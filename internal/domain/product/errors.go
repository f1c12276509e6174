package product

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrInvalidPrice = errors.New("price must not be negative")
	ErrInvalidStock = errors.New("stock must not be negative")
	ErrMissingField = errors.New("required field is missing")
)

// InsufficientStockError rejects an order whose quantity exceeds the
// available stock. It carries the product name and the available count
// so callers can render an actionable message.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}
