package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/vikasgautam18/mcp-example/internal/application/shop"
	"github.com/vikasgautam18/mcp-example/internal/domain/order"
	"github.com/vikasgautam18/mcp-example/internal/domain/product"
)

type OrderHandler struct {
	svc *app.Service
}

func NewOrderHandler(svc *app.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// createOrderRequest uses pointer fields so an absent key is
// distinguishable from a zero value.
type createOrderRequest struct {
	ProductID *string `json:"product_id"`
	Quantity  *int    `json:"quantity"`
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.svc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing product_id or quantity"})
		return
	}

	o, err := h.svc.CreateOrder(c.Request.Context(), *req.ProductID, *req.Quantity)
	if err != nil {
		h.writeCreateOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// writeCreateOrderError translates domain failures into the wire-level
// status codes and messages the tool clients expect.
func (h *OrderHandler) writeCreateOrderError(c *gin.Context, err error) {
	var insufficient *product.InsufficientStockError
	switch {
	case errors.Is(err, order.ErrMissingField), errors.Is(err, order.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing product_id or quantity"})
	case errors.Is(err, product.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
			"Not enough stock for product %s. Available: %d",
			insufficient.ProductName, insufficient.Available,
		)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
