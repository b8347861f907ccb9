package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monolito/ecommerce-go/internal/models"
	"github.com/monolito/ecommerce-go/internal/store"
)

type ProductHandler struct {
	inventory *store.InventoryStore
}

func NewProductHandler(inventory *store.InventoryStore) *ProductHandler {
	return &ProductHandler{inventory: inventory}
}

// CreateProduct adds a product to the catalog.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	product, err := h.inventory.Create(req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts returns the whole catalog.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.inventory.List())
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.inventory.GetByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListByCategory filters the catalog by category.
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, h.inventory.ListByCategory(c.Param("category")))
}

// UpdatePrice overwrites a product's unit price.
func (h *ProductHandler) UpdatePrice(c *gin.Context) {
	var req models.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	product, err := h.inventory.SetPrice(c.Param("id"), req.Price)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateStock overwrites a product's stock count.
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	var req models.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	product, err := h.inventory.SetStock(c.Param("id"), req.Stock)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
