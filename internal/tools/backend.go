package tools

import (
	"context"

	app "github.com/vikasgautam18/mcp-example/internal/application/shop"
	"github.com/vikasgautam18/mcp-example/internal/domain/order"
	"github.com/vikasgautam18/mcp-example/internal/domain/product"
	"github.com/vikasgautam18/mcp-example/internal/infrastructure/http/shopapi"
)

// Backend is the seam between tool handlers and the shop. The
// in-process service and the HTTP client both satisfy it, so a
// tool-server can bind directly or sit in front of a remote mock API.
type Backend interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
	GetProduct(ctx context.Context, id string) (*product.Product, error)
	ListOrders(ctx context.Context) ([]order.Order, error)
	GetOrder(ctx context.Context, id string) (*order.Order, error)
	CreateOrder(ctx context.Context, productID string, quantity int) (*order.Order, error)
}

var (
	_ Backend = (*app.Service)(nil)
	_ Backend = (*shopapi.Client)(nil)
)
