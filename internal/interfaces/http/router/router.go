package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vikasgautam18/mcp-example/internal/interfaces/http/handler"
)

// RegisterRoutes mounts the mock shop API. Paths are unprefixed because
// the tool clients address the endpoints directly.
func RegisterRoutes(r *gin.Engine, productHandler *handler.ProductHandler, orderHandler *handler.OrderHandler) {
	r.GET("/products", productHandler.ListProducts)
	r.GET("/products/:id", productHandler.GetProduct)
	r.GET("/orders", orderHandler.ListOrders)
	r.POST("/orders", orderHandler.CreateOrder)
	r.GET("/orders/:id", orderHandler.GetOrder)
}
