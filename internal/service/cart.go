package service

import (
	"go.uber.org/zap"

	"github.com/monolito/ecommerce-go/internal/apperr"
	"github.com/monolito/ecommerce-go/internal/models"
	"github.com/monolito/ecommerce-go/internal/store"
)

// CartService applies the business rules around cart edits: the user must
// exist, the product must exist, and the combined line quantity must fit the
// stock visible right now. The stock check is advisory — a checkout racing
// with an add is resolved by the orchestrator's re-validation, not here.
type CartService struct {
	users     *store.UserDirectory
	inventory *store.InventoryStore
	carts     *store.CartStore
	log       *zap.Logger
}

func NewCartService(users *store.UserDirectory, inventory *store.InventoryStore, carts *store.CartStore, log *zap.Logger) *CartService {
	return &CartService{
		users:     users,
		inventory: inventory,
		carts:     carts,
		log:       log,
	}
}

// AddItem merges the requested quantity into the user's cart, snapshotting
// the product's current name and price, and returns the resulting line.
func (s *CartService) AddItem(req models.AddToCartRequest) (models.CartItem, error) {
	if !s.users.Exists(req.UserID) {
		return models.CartItem{}, apperr.NotFound("user", req.UserID)
	}

	product, err := s.inventory.GetByID(req.ProductID)
	if err != nil {
		return models.CartItem{}, err
	}

	combined := s.carts.Quantity(req.UserID, req.ProductID) + req.Quantity
	if !s.inventory.CheckAvailable(req.ProductID, combined) {
		return models.CartItem{}, &apperr.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   combined,
			Available:   product.Stock,
		}
	}

	item := models.NewCartItem(product.ID, product.Name, product.Price, combined)
	s.carts.SetLine(req.UserID, item)

	s.log.Debug("cart line set",
		zap.String("user_id", req.UserID),
		zap.String("product_id", product.ID),
		zap.Int("quantity", combined))

	return item, nil
}

// GetCart returns the user's cart with its total and unit count.
func (s *CartService) GetCart(userID string) (models.CartResponse, error) {
	if !s.users.Exists(userID) {
		return models.CartResponse{}, apperr.NotFound("user", userID)
	}

	return models.CartResponse{
		UserID:    userID,
		Items:     s.carts.Lines(userID),
		Total:     s.carts.Total(userID),
		ItemCount: s.carts.Count(userID),
	}, nil
}

// RemoveItem drops one product's line from the cart. Removing an absent line
// is a no-op, matching the store contract.
func (s *CartService) RemoveItem(userID, productID string) error {
	if !s.users.Exists(userID) {
		return apperr.NotFound("user", userID)
	}
	s.carts.Remove(userID, productID)
	return nil
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(userID string) error {
	if !s.users.Exists(userID) {
		return apperr.NotFound("user", userID)
	}
	s.carts.Clear(userID)
	return nil
}
