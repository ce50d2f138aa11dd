// Package store holds the in-memory data stores backing the API. Every
// store is safe for concurrent use and hands out copies, never internal
// slices.
package store

import (
	"errors"

	"github.com/gearstore/gearstore-api/internal/models"
	"github.com/gearstore/gearstore-api/internal/search"
)

// ErrProductNotFound is returned on catalog lookup misses.
var ErrProductNotFound = errors.New("store: product not found")

// featuredCount is how many products the home screen highlights.
const featuredCount = 4

// Catalog serves banners, categories and products. The product set is fixed
// at construction, so reads need no locking.
type Catalog struct {
	banners    []models.Banner
	categories []models.Category
	products   []models.Product
	byID       map[string]int
}

// NewCatalog indexes the given fixture data.
func NewCatalog(banners []models.Banner, categories []models.Category, products []models.Product) *Catalog {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Catalog{
		banners:    banners,
		categories: categories,
		products:   products,
		byID:       byID,
	}
}

func (c *Catalog) Banners() []models.Banner {
	return append([]models.Banner(nil), c.banners...)
}

func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

// Featured returns the highlighted subset of the catalog.
func (c *Catalog) Featured() []models.Product {
	n := featuredCount
	if n > len(c.products) {
		n = len(c.products)
	}
	return append([]models.Product(nil), c.products[:n]...)
}

func (c *Catalog) Products() []models.Product {
	return append([]models.Product(nil), c.products...)
}

// Product looks up a single product by id.
func (c *Catalog) Product(id string) (models.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

// ByCategory returns all products in the given category, in catalog order.
func (c *Catalog) ByCategory(categoryID string) []models.Product {
	results := []models.Product{}
	for _, p := range c.products {
		if p.CategoryID == categoryID {
			results = append(results, p)
		}
	}
	return results
}

// Related resolves a product's related-product references, skipping any that
// point outside the catalog.
func (c *Catalog) Related(id string) ([]models.Product, error) {
	p, err := c.Product(id)
	if err != nil {
		return nil, err
	}
	results := []models.Product{}
	for _, relID := range p.RelatedIDs {
		if rel, err := c.Product(relID); err == nil {
			results = append(results, rel)
		}
	}
	return results, nil
}

// Search runs the filter pipeline over the whole catalog.
func (c *Catalog) Search(f search.Filters) []models.Product {
	return search.Apply(c.products, f)
}
