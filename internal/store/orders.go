package store

import (
	"sync"

	"github.com/monolito/ecommerce-go/internal/apperr"
	"github.com/monolito/ecommerce-go/internal/models"
)

// OrderLedger is the append-only collection of finalized orders. Orders
// arrive here already CONFIRMED; nothing in it is ever mutated afterwards.
type OrderLedger struct {
	mu     sync.RWMutex
	orders map[string]models.Order
	ids    []string // insertion order
}

func NewOrderLedger() *OrderLedger {
	return &OrderLedger{
		orders: make(map[string]models.Order),
	}
}

// Put records a finalized order.
func (s *OrderLedger) Put(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; !ok {
		s.ids = append(s.ids, order.ID)
	}
	s.orders[order.ID] = cloneOrder(order)
}

// GetByID returns a copy of the order.
func (s *OrderLedger) GetByID(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, apperr.NotFound("order", id)
	}
	return cloneOrder(order), nil
}

// ByUser returns the user's orders in the order they were recorded.
func (s *OrderLedger) ByUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, id := range s.ids {
		if order := s.orders[id]; order.UserID == userID {
			out = append(out, cloneOrder(order))
		}
	}
	return out
}

// All returns every recorded order in insertion order.
func (s *OrderLedger) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, cloneOrder(s.orders[id]))
	}
	return out
}

// cloneOrder copies the item slice so callers cannot alias ledger state.
func cloneOrder(order models.Order) models.Order {
	items := make([]models.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}
