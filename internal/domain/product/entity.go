package product

// Product is one catalog entry. Stock is the only mutable field and is
// only ever decremented by order creation.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func New(id, name string, price float64, stock int) (*Product, error) {
	if id == "" || name == "" {
		return nil, ErrMissingField
	}
	p, err := NewPrice(price)
	if err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		ID:    id,
		Name:  name,
		Price: p.Value(),
		Stock: stock,
	}, nil
}
