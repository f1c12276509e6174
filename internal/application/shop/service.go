package shop

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vikasgautam18/mcp-example/internal/domain/order"
	"github.com/vikasgautam18/mcp-example/internal/domain/product"
	"github.com/vikasgautam18/mcp-example/pkg/logger"
)

// Service owns the product catalog and the order ledger. All state lives
// in memory for the process lifetime; one lock serializes mutation so
// stock never goes negative and an order is only visible together with
// its stock decrement.
type Service struct {
	mu       sync.RWMutex
	products map[string]*product.Product
	orders   map[string]*order.Order
	orderSeq []string // ledger insertion order, for deterministic listing
	log      logger.Logger
}

type Option func(*Service)

// WithLogger replaces the default no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithSeedOrders pre-populates the ledger with the two historical demo
// orders. The bare constructor starts with an empty ledger.
func WithSeedOrders() Option {
	return func(s *Service) {
		seeds := []*order.Order{
			{ID: "1", ProductID: "1", ProductName: "Laptop", Quantity: 2, TotalPrice: 2400.00, Status: order.StatusPending},
			{ID: "2", ProductID: "2", ProductName: "Mouse", Quantity: 1, TotalPrice: 25.00, Status: order.StatusShipped},
		}
		for _, o := range seeds {
			s.orders[o.ID] = o
			s.orderSeq = append(s.orderSeq, o.ID)
		}
	}
}

// NewService builds a service seeded with the fixed sample catalog.
func NewService(opts ...Option) *Service {
	s := &Service{
		products: map[string]*product.Product{
			"1": {ID: "1", Name: "Laptop", Price: 1200.00, Stock: 10},
			"2": {ID: "2", Name: "Mouse", Price: 25.00, Stock: 50},
			"3": {ID: "3", Name: "Keyboard", Price: 75.00, Stock: 30},
		},
		orders: make(map[string]*order.Order),
		log:    logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListProducts returns every catalog entry sorted by id.
func (s *Service) ListProducts(ctx context.Context) ([]product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetProduct looks up one product by id.
func (s *Service) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// ListOrders returns every ledger entry in creation order.
func (s *Service) ListOrders(ctx context.Context) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]order.Order, 0, len(s.orderSeq))
	for _, id := range s.orderSeq {
		out = append(out, *s.orders[id])
	}
	return out, nil
}

// GetOrder looks up one order by id.
func (s *Service) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

// CreateOrder validates the request, reserves stock and records the
// order as one atomic step. Checks run in a fixed sequence so error
// precedence is deterministic: malformed input, then unknown product,
// then insufficient stock. Nothing is mutated on any rejection.
func (s *Service) CreateOrder(ctx context.Context, productID string, quantity int) (*order.Order, error) {
	if productID == "" {
		return nil, order.ErrMissingField
	}
	if quantity <= 0 {
		return nil, order.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return nil, product.ErrNotFound
	}
	if p.Stock < quantity {
		return nil, &product.InsufficientStockError{
			ProductName: p.Name,
			Requested:   quantity,
			Available:   p.Stock,
		}
	}

	o, err := order.New(uuid.NewString(), p.ID, p.Name, quantity, p.Price)
	if err != nil {
		return nil, err
	}

	// Ledger insert and stock decrement happen under the same lock; no
	// reader can observe one without the other.
	s.orders[o.ID] = o
	s.orderSeq = append(s.orderSeq, o.ID)
	p.Stock -= quantity

	s.log.Info("order created",
		logger.String("order_id", o.ID),
		logger.String("product_id", p.ID),
		logger.Int("quantity", quantity),
		logger.Float64("total_price", o.TotalPrice),
		logger.Int("stock_left", p.Stock),
	)

	cp := *o
	return &cp, nil
}
