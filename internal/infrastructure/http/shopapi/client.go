package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/vikasgautam18/mcp-example/internal/config"
	"github.com/vikasgautam18/mcp-example/internal/domain/order"
	"github.com/vikasgautam18/mcp-example/internal/domain/product"
)

// Client calls a running mock shop API over HTTP. It exposes the same
// operations as the in-process service so a tool-server can be pointed
// at either one.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.ShopAPIConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

// APIError is a non-2xx reply that did not map onto a known domain
// error. The message comes from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shop api: %s (status %d)", e.Message, e.StatusCode)
}

func (c *Client) ListProducts(ctx context.Context) ([]product.Product, error) {
	var out []product.Product
	if err := c.get(ctx, "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	var out product.Product
	if err := c.get(ctx, "/products/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]order.Order, error) {
	var out []order.Order
	if err := c.get(ctx, "/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	var out order.Order
	if err := c.get(ctx, "/orders/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, productID string, quantity int) (*order.Order, error) {
	payload, err := json.Marshal(map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	})
	if err != nil {
		return nil, fmt.Errorf("encode order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out order.Order
	if err := c.do(req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, http.StatusOK, out)
}

func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call shop api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read shop api response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return apiError(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode shop api response: %w", err)
	}
	return nil
}

// apiError maps the server's error envelope back onto domain errors so
// callers can distinguish not-found and validation failures from
// transport problems.
func apiError(status int, body []byte) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == "" {
		return &APIError{StatusCode: status, Message: string(body)}
	}

	switch envelope.Error {
	case "Product not found":
		return product.ErrNotFound
	case "Order not found":
		return order.ErrNotFound
	case "Missing product_id or quantity":
		return order.ErrMissingField
	}
	return &APIError{StatusCode: status, Message: envelope.Error}
}
