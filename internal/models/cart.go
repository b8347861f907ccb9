package models

import "github.com/shopspring/decimal"

// CartItem is one line of a user's cart. Name and price are snapshots taken
// when the line was added; the subtotal is always price × quantity.
type CartItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

func NewCartItem(productID, productName string, price decimal.Decimal, quantity int) CartItem {
	return CartItem{
		ProductID:   productID,
		ProductName: productName,
		Price:       price,
		Quantity:    quantity,
		Subtotal:    price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

type AddToCartRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type CartResponse struct {
	UserID    string          `json:"user_id"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}
