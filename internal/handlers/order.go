package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monolito/ecommerce-go/internal/models"
	"github.com/monolito/ecommerce-go/internal/service"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder converts the user's cart into a confirmed order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	order, err := h.orders.CreateOrder(req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder returns a single finalized order.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrderByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListOrdersByUser returns the user's orders, oldest first.
func (h *OrderHandler) ListOrdersByUser(c *gin.Context) {
	c.JSON(http.StatusOK, h.orders.OrdersByUser(c.Param("userId")))
}

// ListOrders returns every finalized order.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.orders.AllOrders())
}
