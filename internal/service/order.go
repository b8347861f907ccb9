package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/monolito/ecommerce-go/internal/apperr"
	"github.com/monolito/ecommerce-go/internal/metrics"
	"github.com/monolito/ecommerce-go/internal/models"
)

// OrderService converts carts into confirmed orders against live inventory.
// There is no multi-key transaction primitive underneath, so CreateOrder
// runs as one global critical section and reverses already-applied stock
// decrements by hand when a later line fails.
type OrderService struct {
	// mu serializes checkout process-wide: at most one order is being
	// materialized at any instant. Coarse on purpose — the pre-validation
	// and the per-line decrements span multiple products, and without an
	// enclosing critical section two checkouts could pass pre-validation
	// against the same stock units. Known throughput bottleneck.
	mu sync.Mutex

	users     Users
	carts     Carts
	inventory Inventory
	ledger    Ledger
	log       *zap.Logger
	metrics   *metrics.OrderMetrics
}

func NewOrderService(users Users, carts Carts, inventory Inventory, ledger Ledger, log *zap.Logger, m *metrics.OrderMetrics) *OrderService {
	return &OrderService{
		users:     users,
		carts:     carts,
		inventory: inventory,
		ledger:    ledger,
		log:       log,
		metrics:   m,
	}
}

// stockChange is one applied decrement, kept so it can be compensated.
type stockChange struct {
	productID string
	quantity  int
}

// CreateOrder materializes the user's cart as a confirmed order.
//
// Failures before any stock is touched (unknown user, empty cart, failed
// pre-validation) leave the system untouched. A decrement failure after
// some lines were already applied triggers best-effort compensation and
// surfaces as an OrderCreationError wrapping the root stock error. The cart
// is cleared only when the order is confirmed.
func (s *OrderService) CreateOrder(userID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.users.Exists(userID) {
		s.metrics.OrdersRejected.WithLabelValues("user_not_found").Inc()
		return models.Order{}, apperr.NotFound("user", userID)
	}

	lines := s.carts.Lines(userID)
	if len(lines) == 0 {
		s.metrics.OrdersRejected.WithLabelValues("empty_cart").Inc()
		return models.Order{}, apperr.ErrEmptyCart
	}

	// Optimistic gate: reject without side effects if any line already
	// cannot be satisfied. The decrements below still re-validate per line.
	for _, line := range lines {
		if !s.inventory.CheckAvailable(line.ProductID, line.Quantity) {
			s.metrics.OrdersRejected.WithLabelValues("insufficient_stock").Inc()
			return models.Order{}, &apperr.InsufficientStockError{
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Requested:   line.Quantity,
				Available:   -1,
			}
		}
	}

	items := make([]models.OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		item := models.NewOrderItem(line)
		items = append(items, item)
		total = total.Add(item.Subtotal)
	}

	order := models.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	applied := make([]stockChange, 0, len(items))
	for _, item := range items {
		if err := s.inventory.Decrease(item.ProductID, item.Quantity); err != nil {
			s.compensate(order.ID, applied)
			order.Status = models.OrderStatusCancelled
			s.metrics.OrdersRejected.WithLabelValues("stock_conflict").Inc()
			s.log.Warn("order cancelled mid-commit",
				zap.String("order_id", order.ID),
				zap.String("user_id", userID),
				zap.String("product_id", item.ProductID),
				zap.Error(err))
			return models.Order{}, &apperr.OrderCreationError{Cause: err}
		}
		applied = append(applied, stockChange{productID: item.ProductID, quantity: item.Quantity})
	}

	order.Status = models.OrderStatusConfirmed
	s.ledger.Put(order)
	s.carts.Clear(userID)
	s.metrics.OrdersConfirmed.Inc()

	s.log.Info("order confirmed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Int("lines", len(items)),
		zap.String("total", order.Total.String()))

	return order, nil
}

// compensate reverses applied decrements in reverse order. A failure on one
// entry is logged and does not stop the remaining entries from being
// reversed.
func (s *OrderService) compensate(orderID string, applied []stockChange) {
	for i := len(applied) - 1; i >= 0; i-- {
		change := applied[i]
		if err := s.inventory.Increase(change.productID, change.quantity); err != nil {
			s.log.Warn("stock compensation failed",
				zap.String("order_id", orderID),
				zap.String("product_id", change.productID),
				zap.Int("quantity", change.quantity),
				zap.Error(err))
		}
	}
	s.metrics.StockRollbacks.Inc()
}

// GetOrderByID reads a finalized order from the ledger.
func (s *OrderService) GetOrderByID(id string) (models.Order, error) {
	return s.ledger.GetByID(id)
}

// OrdersByUser lists the user's orders, oldest first.
func (s *OrderService) OrdersByUser(userID string) []models.Order {
	return s.ledger.ByUser(userID)
}

// AllOrders lists every finalized order, oldest first.
func (s *OrderService) AllOrders() []models.Order {
	return s.ledger.All()
}
