package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register wires every API route onto the engine. Used by the server binary
// and by the HTTP tests, so both run the same surface.
func Register(r *gin.Engine, users *UserHandler, products *ProductHandler, carts *CartHandler, orders *OrderHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "ecommerce-monolith"})
	})

	api := r.Group("/api")

	api.POST("/users/register", users.Register)
	api.POST("/users/login", users.Login)
	api.GET("/users", users.ListUsers)
	api.GET("/users/:id", users.GetUser)

	api.POST("/products", products.CreateProduct)
	api.GET("/products", products.ListProducts)
	api.GET("/products/:id", products.GetProduct)
	api.GET("/products/category/:category", products.ListByCategory)
	api.PUT("/products/:id/price", products.UpdatePrice)
	api.PUT("/products/:id/stock", products.UpdateStock)

	api.POST("/cart/add", carts.AddItem)
	api.GET("/cart/:userId", carts.GetCart)
	api.DELETE("/cart/:userId/item/:productId", carts.RemoveItem)
	api.DELETE("/cart/:userId", carts.ClearCart)

	api.POST("/orders", orders.CreateOrder)
	api.GET("/orders", orders.ListOrders)
	api.GET("/orders/:id", orders.GetOrder)
	api.GET("/orders/user/:userId", orders.ListOrdersByUser)
}
