package store

import (
	"context"
	"sync"

	"github.com/gearstore/gearstore-api/internal/models"
)

// Carts is the remote mirror of each user's cart, keyed by user id. It
// stores whatever line items the cart manager hands it; all merge and
// clamping logic lives in the manager.
type Carts struct {
	mu    sync.RWMutex
	items map[string][]models.CartItem
}

func NewCarts() *Carts {
	return &Carts{items: make(map[string][]models.CartItem)}
}

// Get returns the stored cart, or an empty slice when the user has none.
func (c *Carts) Get(_ context.Context, userID string) ([]models.CartItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.CartItem(nil), c.items[userID]...), nil
}

// Replace overwrites the user's cart with the given items.
func (c *Carts) Replace(_ context.Context, userID string, items []models.CartItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[userID] = append([]models.CartItem(nil), items...)
	return nil
}
