package product

// Price is a per-unit amount. Zero is allowed, negative is not.
type Price struct {
	value float64
}

func (p Price) Value() float64 {
	return p.value
}

func NewPrice(value float64) (Price, error) {
	if value < 0 {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: value}, nil
}
