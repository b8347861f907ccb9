package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderItem is an immutable snapshot of a cart line at checkout time.
type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// NewOrderItem freezes a cart line into an order item.
func NewOrderItem(line CartItem) OrderItem {
	return OrderItem{
		ProductID:   line.ProductID,
		ProductName: line.ProductName,
		Price:       line.Price,
		Quantity:    line.Quantity,
		Subtotal:    line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
	}
}

type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateOrderRequest struct {
	UserID string `json:"user_id" binding:"required"`
}
