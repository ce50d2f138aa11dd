package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearstore/gearstore-api/internal/search"
	"github.com/gearstore/gearstore-api/internal/store"
)

//
// --- Catalog Handlers (Public) ---
//

// GetBanners is the handler for GET /v1/banners
func (h *Handlers) GetBanners(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"banners": h.Catalog.Banners()})
}

// GetCategories is the handler for GET /v1/categories
func (h *Handlers) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog.Categories()})
}

// GetFeaturedProducts is the handler for GET /v1/products/featured
func (h *Handlers) GetFeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.Catalog.Featured()})
}

// GetProduct is the handler for GET /v1/products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	product, err := h.Catalog.Product(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetRelatedProducts is the handler for GET /v1/products/:id/related
func (h *Handlers) GetRelatedProducts(c *gin.Context) {
	related, err := h.Catalog.Related(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": related})
}

// GetProductsByCategory is the handler for GET /v1/categories/:id/products
func (h *Handlers) GetProductsByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.Catalog.ByCategory(c.Param("id"))})
}

// SearchProducts is the handler for GET /v1/products/search.
// Query params: q, category, price_range ("min-max"), sort.
func (h *Handlers) SearchProducts(c *gin.Context) {
	filters := search.Filters{
		Query:      c.Query("q"),
		CategoryID: c.Query("category"),
		PriceRange: c.Query("price_range"),
		SortBy:     search.SortKey(c.DefaultQuery("sort", string(search.SortPopular))),
	}
	c.JSON(http.StatusOK, gin.H{"products": h.Catalog.Search(filters)})
}
