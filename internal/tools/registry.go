package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vikasgautam18/mcp-example/internal/domain/order"
	"github.com/vikasgautam18/mcp-example/internal/domain/product"
	"github.com/vikasgautam18/mcp-example/internal/infrastructure/http/shopapi"
)

type GetAllProductsInput struct{}

type GetProductByIDInput struct {
	ProductID string `json:"product_id" jsonschema_description:"ID of the product to retrieve."`
}

type GetAllOrdersInput struct{}

type CreateOrderInput struct {
	ProductID string `json:"product_id" jsonschema_description:"ID of the product to order."`
	Quantity  int    `json:"quantity" jsonschema_description:"Number of units to order; must be a positive integer."`
}

type GetOrderByIDInput struct {
	OrderID string `json:"order_id" jsonschema_description:"ID of the order to retrieve."`
}

var (
	GetAllProductsInputSchema = GenerateSchema[GetAllProductsInput]()
	GetProductByIDInputSchema = GenerateSchema[GetProductByIDInput]()
	GetAllOrdersInputSchema   = GenerateSchema[GetAllOrdersInput]()
	CreateOrderInputSchema    = GenerateSchema[CreateOrderInput]()
	GetOrderByIDInputSchema   = GenerateSchema[GetOrderByIDInput]()
)

// Registry builds the five shop tools against the given backend. The
// slice order is the declaration order the tool-server advertises.
func Registry(b Backend) []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "get_all_products",
			Description: "Retrieves a list of all available products from the mock shop API.",
			InputSchema: GetAllProductsInputSchema,
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				products, err := b.ListProducts(ctx)
				if err != nil {
					return resultError(err)
				}
				return resultJSON(products)
			},
		},
		{
			Name:        "get_product_by_id",
			Description: "Retrieves a single product by its ID from the mock shop API.",
			InputSchema: GetProductByIDInputSchema,
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in GetProductByIDInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", err
				}
				p, err := b.GetProduct(ctx, in.ProductID)
				if err != nil {
					return resultError(err)
				}
				return resultJSON(p)
			},
		},
		{
			Name:        "get_all_orders",
			Description: "Retrieves a list of all orders from the mock shop API.",
			InputSchema: GetAllOrdersInputSchema,
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				orders, err := b.ListOrders(ctx)
				if err != nil {
					return resultError(err)
				}
				return resultJSON(orders)
			},
		},
		{
			Name:        "create_order",
			Description: "Creates a new order for a product with a specified quantity.",
			InputSchema: CreateOrderInputSchema,
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in CreateOrderInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", err
				}
				o, err := b.CreateOrder(ctx, in.ProductID, in.Quantity)
				if err != nil {
					return resultError(err)
				}
				return resultJSON(o)
			},
		},
		{
			Name:        "get_order_by_id",
			Description: "Retrieves a single order by its ID from the mock shop API.",
			InputSchema: GetOrderByIDInputSchema,
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in GetOrderByIDInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", err
				}
				o, err := b.GetOrder(ctx, in.OrderID)
				if err != nil {
					return resultError(err)
				}
				return resultJSON(o)
			},
		},
	}
}

func resultJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode tool result: %w", err)
	}
	return string(b), nil
}

// resultError turns expected business failures into a structured JSON
// error result, using the same messages as the HTTP surface. Anything
// else is a transport or infrastructure failure and propagates as a
// plain error.
func resultError(err error) (string, error) {
	msg, ok := businessMessage(err)
	if !ok {
		return "", err
	}
	return resultJSON(map[string]string{"error": msg})
}

func businessMessage(err error) (string, bool) {
	var insufficient *product.InsufficientStockError
	var apiErr *shopapi.APIError
	switch {
	case errors.Is(err, product.ErrNotFound):
		return "Product not found", true
	case errors.Is(err, order.ErrNotFound):
		return "Order not found", true
	case errors.Is(err, order.ErrMissingField), errors.Is(err, order.ErrInvalidQuantity):
		return "Missing product_id or quantity", true
	case errors.As(err, &insufficient):
		return fmt.Sprintf("Not enough stock for product %s. Available: %d",
			insufficient.ProductName, insufficient.Available), true
	case errors.As(err, &apiErr):
		return apiErr.Message, true
	}
	return "", false
}
