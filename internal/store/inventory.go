package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monolito/ecommerce-go/internal/apperr"
	"github.com/monolito/ecommerce-go/internal/models"
)

// InventoryStore is the single source of truth for the product catalog and
// its stock counts. Every mutation happens under the store mutex, so the
// check-and-subtract in Decrease is one atomic step and no reader can ever
// observe a negative stock count.
type InventoryStore struct {
	mu       sync.RWMutex
	products map[string]*models.Product
	ids      []string // insertion order for deterministic listings
}

func NewInventoryStore() *InventoryStore {
	return &InventoryStore{
		products: make(map[string]*models.Product),
	}
}

// Create adds a product to the catalog and returns a copy of it.
func (s *InventoryStore) Create(req models.CreateProductRequest) (models.Product, error) {
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return models.Product{}, apperr.Validation("price must be greater than zero")
	}
	if req.Stock < 0 {
		return models.Product{}, apperr.Validation("stock cannot be negative")
	}

	p := &models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.products[p.ID] = p
	s.ids = append(s.ids, p.ID)
	s.mu.Unlock()

	return *p, nil
}

// GetByID returns a copy of the product.
func (s *InventoryStore) GetByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, apperr.NotFound("product", id)
	}
	return *p, nil
}

// List returns all products in insertion order.
func (s *InventoryStore) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, *s.products[id])
	}
	return out
}

// ListByCategory returns products whose category matches, case-insensitively.
func (s *InventoryStore) ListByCategory(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Product
	for _, id := range s.ids {
		p := s.products[id]
		if strings.EqualFold(p.Category, category) {
			out = append(out, *p)
		}
	}
	return out
}

// CheckAvailable reports whether the product exists and has at least qty
// units in stock. The answer is advisory: stock may change before the caller
// acts on it, which is why Decrease re-validates.
func (s *InventoryStore) CheckAvailable(productID string, qty int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[productID]
	return ok && p.Stock >= qty
}

// Decrease atomically re-checks stock >= qty and subtracts qty. A prior
// CheckAvailable result is never trusted here.
func (s *InventoryStore) Decrease(productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return apperr.NotFound("product", productID)
	}
	if p.Stock < qty {
		return &apperr.InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Requested:   qty,
			Available:   p.Stock,
		}
	}
	p.Stock -= qty
	return nil
}

// Increase adds qty back to stock. Used for compensation after a failed
// multi-line decrement; it does not validate against any upper bound.
func (s *InventoryStore) Increase(productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return apperr.NotFound("product", productID)
	}
	p.Stock += qty
	return nil
}

// SetPrice overwrites the unit price. Administrative operation.
func (s *InventoryStore) SetPrice(productID string, price decimal.Decimal) (models.Product, error) {
	if price.LessThanOrEqual(decimal.Zero) {
		return models.Product{}, apperr.Validation("price must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return models.Product{}, apperr.NotFound("product", productID)
	}
	p.Price = price
	return *p, nil
}

// SetStock overwrites the stock count. Administrative operation.
func (s *InventoryStore) SetStock(productID string, stock int) (models.Product, error) {
	if stock < 0 {
		return models.Product{}, apperr.Validation("stock cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return models.Product{}, apperr.NotFound("product", productID)
	}
	p.Stock = stock
	return *p, nil
}
