package order

// Order lifecycle labels. Only StatusPending is ever produced at
// runtime; the rest are reserved for transitions that have no code
// path yet (seed data uses StatusShipped).
const (
	StatusPending   = "pending"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the declared lifecycle labels.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
