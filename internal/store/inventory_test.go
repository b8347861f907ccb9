package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/monolito/ecommerce-go/internal/apperr"
	"github.com/monolito/ecommerce-go/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func createProduct(t *testing.T, s *InventoryStore, name, price string, stock int) models.Product {
	t.Helper()
	p, err := s.Create(models.CreateProductRequest{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		Category: "electronics",
	})
	require.NoError(t, err)
	return p
}

func TestCreateValidation(t *testing.T) {
	s := NewInventoryStore()

	_, err := s.Create(models.CreateProductRequest{Name: "free", Price: decimal.Zero, Stock: 1})
	var invalid *apperr.ValidationError
	require.ErrorAs(t, err, &invalid)

	_, err = s.Create(models.CreateProductRequest{Name: "negative", Price: decimal.RequireFromString("9.99"), Stock: -1})
	require.ErrorAs(t, err, &invalid)
}

func TestGetByIDReturnsCopy(t *testing.T) {
	s := NewInventoryStore()
	p := createProduct(t, s, "keyboard", "49.90", 10)

	got, err := s.GetByID(p.ID)
	require.NoError(t, err)
	got.Stock = 999

	again, err := s.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, again.Stock)
}

func TestGetByIDUnknown(t *testing.T) {
	s := NewInventoryStore()

	_, err := s.GetByID("nope")
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "product", nf.Resource)
}

func TestListInsertionOrder(t *testing.T) {
	s := NewInventoryStore()
	a := createProduct(t, s, "a", "1.00", 1)
	b := createProduct(t, s, "b", "2.00", 2)
	c := createProduct(t, s, "c", "3.00", 3)

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestListByCategory(t *testing.T) {
	s := NewInventoryStore()
	createProduct(t, s, "phone", "100.00", 1)
	_, err := s.Create(models.CreateProductRequest{
		Name: "novel", Price: decimal.RequireFromString("12.50"), Stock: 3, Category: "Books",
	})
	require.NoError(t, err)

	books := s.ListByCategory("books")
	require.Len(t, books, 1)
	assert.Equal(t, "novel", books[0].Name)
	assert.Empty(t, s.ListByCategory("toys"))
}

func TestCheckAvailable(t *testing.T) {
	s := NewInventoryStore()
	p := createProduct(t, s, "mouse", "19.99", 5)

	assert.True(t, s.CheckAvailable(p.ID, 5))
	assert.False(t, s.CheckAvailable(p.ID, 6))
	assert.False(t, s.CheckAvailable("missing", 1))
}

func TestDecrease(t *testing.T) {
	s := NewInventoryStore()
	p := createProduct(t, s, "monitor", "199.00", 5)

	require.NoError(t, s.Decrease(p.ID, 3))

	got, err := s.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)
}

func TestDecreaseInsufficient(t *testing.T) {
	s := NewInventoryStore()
	p := createProduct(t, s, "monitor", "199.00", 2)

	err := s.Decrease(p.ID, 3)
	var noStock *apperr.InsufficientStockError
	require.ErrorAs(t, err, &noStock)
	assert.Equal(t, 3, noStock.Requested)
	assert.Equal(t, 2, noStock.Available)
	assert.Equal(t, "monitor", noStock.ProductName)

	// failed decrement must not touch stock
	got, err := s.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)
}

func TestDecreaseUnknown(t *testing.T) {
	s := NewInventoryStore()
	var nf *apperr.NotFoundError
	require.ErrorAs(t, s.Decrease("missing", 1), &nf)
}

func TestIncrease(t *testing.T) {
	s := NewInventoryStore()
	p := createProduct(t, s, "cable", "4.99", 0)

	require.NoError(t, s.Increase(p.ID, 7))

	got, err := s.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)

	var nf *apperr.NotFoundError
	require.ErrorAs(t, s.Increase("missing", 1), &nf)
}

func TestSetPrice(t *testing.T) {
	s := NewInventoryStore()
	p := createProduct(t, s, "lamp", "30.00", 1)

	updated, err := s.SetPrice(p.ID, decimal.RequireFromString("25.50"))
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("25.50")))

	_, err = s.SetPrice(p.ID, decimal.Zero)
	var invalid *apperr.ValidationError
	require.ErrorAs(t, err, &invalid)

	_, err = s.SetPrice("missing", decimal.RequireFromString("1.00"))
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestSetStock(t *testing.T) {
	s := NewInventoryStore()
	p := createProduct(t, s, "lamp", "30.00", 1)

	updated, err := s.SetStock(p.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, updated.Stock)

	_, err = s.SetStock(p.ID, -1)
	var invalid *apperr.ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestConcurrentDecreaseNeverNegative(t *testing.T) {
	s := NewInventoryStore()
	p := createProduct(t, s, "limited", "10.00", 50)

	const workers = 100
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.Decrease(p.ID, 1)
		}()
	}
	wg.Wait()
	close(results)

	succeeded, failed := 0, 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		failed++
		var noStock *apperr.InsufficientStockError
		require.True(t, errors.As(err, &noStock))
	}

	assert.Equal(t, 50, succeeded)
	assert.Equal(t, 50, failed)

	got, err := s.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
}

func TestConcurrentIncreaseAndDecrease(t *testing.T) {
	s := NewInventoryStore()
	p := createProduct(t, s, "churn", "10.00", 100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Decrease(p.ID, 2))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Increase(p.ID, 1))
		}()
	}
	wg.Wait()

	got, err := s.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Stock)
}
