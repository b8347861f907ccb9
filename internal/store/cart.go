package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/monolito/ecommerce-go/internal/models"
)

// CartStore holds each user's pending cart lines, in the order they were
// first added. It is pure keyed storage: stock validation against inventory
// lives in the cart service, and is advisory there anyway — the checkout
// path re-validates against live stock.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[string][]models.CartItem),
	}
}

// Lines returns a copy of the user's cart lines. Unknown users get an empty
// slice, never an error.
func (s *CartStore) Lines(userID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[userID]
	out := make([]models.CartItem, len(lines))
	copy(out, lines)
	return out
}

// Quantity returns the quantity of the given product currently in the cart,
// or zero if absent.
func (s *CartStore) Quantity(userID, productID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, line := range s.carts[userID] {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

// SetLine replaces the line for the item's product, keeping its position, or
// appends a new line if the product is not in the cart yet.
func (s *CartStore) SetLine(userID string, item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i, line := range lines {
		if line.ProductID == item.ProductID {
			lines[i] = item
			return
		}
	}
	s.carts[userID] = append(lines, item)
}

// Remove drops the line for the given product, if present.
func (s *CartStore) Remove(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i, line := range lines {
		if line.ProductID == productID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// Clear drops the user's whole cart.
func (s *CartStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}

// Total is the sum of the cart's line subtotals.
func (s *CartStore) Total(userID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, line := range s.carts[userID] {
		total = total.Add(line.Subtotal)
	}
	return total
}

// Count is the total number of units across all lines.
func (s *CartStore) Count(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, line := range s.carts[userID] {
		count += line.Quantity
	}
	return count
}
