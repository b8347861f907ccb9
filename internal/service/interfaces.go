package service

import "github.com/monolito/ecommerce-go/internal/models"

// The checkout orchestrator sees its collaborators through these narrow
// views. The concrete stores satisfy them; tests substitute fault-injecting
// doubles to drive the compensation path.

type Inventory interface {
	CheckAvailable(productID string, qty int) bool
	Decrease(productID string, qty int) error
	Increase(productID string, qty int) error
}

type Carts interface {
	Lines(userID string) []models.CartItem
	Clear(userID string)
}

type Users interface {
	Exists(userID string) bool
}

type Ledger interface {
	Put(order models.Order)
	GetByID(id string) (models.Order, error)
	ByUser(userID string) []models.Order
	All() []models.Order
}
