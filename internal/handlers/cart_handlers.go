package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearstore/gearstore-api/internal/models"
	"github.com/gearstore/gearstore-api/internal/store"
)

//
// --- Cart Handlers (Login Required) ---
//

// cartResponse is the envelope every cart mutation returns, so clients can
// refresh badges without a second request.
func cartResponse(items []models.CartItem, total float64, count int) gin.H {
	if items == nil {
		items = []models.CartItem{}
	}
	return gin.H{
		"items":      items,
		"subtotal":   total,
		"totalItems": count,
	}
}

// GetCart is the handler for GET /v1/cart
func (h *Handlers) GetCart(c *gin.Context) {
	m, err := h.cartManager(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(m.Items(), m.Total(), m.Count()))
}

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Variant   string `json:"variant"`
}

// AddToCart is the handler for POST /v1/cart/items. The product snapshot
// (name, brand, price, image) is taken at add-time.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product, err := h.Catalog.Product(input.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	m, err := h.cartManager(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	m.Add(c.Request.Context(), models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  input.Quantity,
		Variant:   input.Variant,
	})

	c.JSON(http.StatusCreated, cartResponse(m.Items(), m.Total(), m.Count()))
}

// UpdateCartItemInput defines the JSON for updating an item's quantity.
// Anything below 1 is clamped to 1; removal is a separate endpoint.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem is the handler for PUT /v1/cart/items/:product_id
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.cartManager(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	if !m.SetQuantity(c.Request.Context(), c.Param("product_id"), input.Quantity) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(m.Items(), m.Total(), m.Count()))
}

// DeleteCartItem is the handler for DELETE /v1/cart/items/:product_id
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	m, err := h.cartManager(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	if !m.Remove(c.Request.Context(), c.Param("product_id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(m.Items(), m.Total(), m.Count()))
}

// ClearCart is the handler for DELETE /v1/cart
func (h *Handlers) ClearCart(c *gin.Context) {
	m, err := h.cartManager(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	m.Clear(c.Request.Context())
	c.JSON(http.StatusOK, cartResponse(nil, 0, 0))
}
