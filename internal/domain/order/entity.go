package order

// Order is one ledger entry. ProductName and TotalPrice are snapshots
// taken from the product at creation time and never track later changes.
type Order struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
}

func New(id, productID, productName string, quantity int, unitPrice float64) (*Order, error) {
	if id == "" || productID == "" || productName == "" {
		return nil, ErrMissingField
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return nil, ErrInvalidPrice
	}

	return &Order{
		ID:          id,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		TotalPrice:  unitPrice * float64(quantity),
		Status:      StatusPending,
	}, nil
}
