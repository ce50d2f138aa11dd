// Package cart implements the cart manager: an ordered list of line items
// merged by product id, with derived totals and best-effort persistence
// keyed by authentication state.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/gearstore/gearstore-api/internal/keystore"
	"github.com/gearstore/gearstore-api/internal/models"
)

// localCartKey is where the anonymous cart (and the authenticated backup
// copy) lives in the local key-value store.
const localCartKey = "cart"

// RemoteStore mirrors the cart server-side for authenticated sessions.
type RemoteStore interface {
	Get(ctx context.Context, userID string) ([]models.CartItem, error)
	Replace(ctx context.Context, userID string, items []models.CartItem) error
}

// LocalStore is the device-local fallback, satisfied by keystore.Store.
type LocalStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Session identifies an authenticated user. A nil session means anonymous:
// the cart persists locally only.
type Session struct {
	UserID string
	Token  string
}

// Manager owns the cart state. Mutations recompute nothing up front; Total
// and Count derive their values on every call so they can never go stale.
type Manager struct {
	mu       sync.Mutex
	items    []models.CartItem
	remote   RemoteStore
	local    LocalStore
	localKey string
	session  *Session

	// lastSyncErr records the most recent persistence failure. Mutations
	// still succeed locally when the mirror write fails; callers that want
	// to surface the problem can read it back.
	lastSyncErr error
}

// NewManager builds an empty manager. Either store may be nil, in which case
// that persistence target is skipped.
func NewManager(remote RemoteStore, local LocalStore) *Manager {
	return &Manager{remote: remote, local: local, localKey: localCartKey}
}

// SetLocalKey overrides the local storage key, letting several carts share
// one key-value store (the server mirrors each user's cart under its own
// key).
func (m *Manager) SetLocalKey(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.localKey = key
}

// SetSession switches between anonymous and authenticated persistence.
// Switching does not merge carts; call Load to pick up the new target's
// state (the source app discards the anonymous cart on login).
func (m *Manager) SetSession(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s
}

// Load replaces the in-memory cart from the active persistence target:
// remote when a session is present, local otherwise. A missing local cart is
// treated as empty.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil && m.remote != nil {
		items, err := m.remote.Get(ctx, m.session.UserID)
		if err != nil {
			return err
		}
		m.items = items
		return nil
	}

	if m.local == nil {
		m.items = nil
		return nil
	}
	data, err := m.local.Get(m.localKey)
	if errors.Is(err, keystore.ErrKeyNotFound) {
		m.items = nil
		return nil
	}
	if err != nil {
		return err
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	m.items = items
	return nil
}

// Add merges the item into the cart: an existing line with the same product
// id has its quantity incremented, otherwise the item is appended. A
// non-positive quantity counts as 1.
func (m *Manager) Add(ctx context.Context, item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == item.ProductID {
			m.items[i].Quantity += item.Quantity
			m.sync(ctx)
			return
		}
	}
	m.items = append(m.items, item)
	m.sync(ctx)
}

// Remove deletes the line with the given product id and reports whether it
// was present.
func (m *Manager) Remove(ctx context.Context, productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.sync(ctx)
			return true
		}
	}
	return false
}

// SetQuantity sets the quantity of a line, clamping anything below 1 to 1.
// It never removes the line; use Remove for that. Reports whether the
// product was in the cart.
func (m *Manager) SetQuantity(ctx context.Context, productID string, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity = quantity
			m.sync(ctx)
			return true
		}
	}
	return false
}

// Clear empties the cart (used after checkout).
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.sync(ctx)
}

// Items returns a copy of the current line items.
func (m *Manager) Items() []models.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.CartItem(nil), m.items...)
}

// Total is the sum of line subtotals, derived on every call.
func (m *Manager) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total float64
	for _, item := range m.items {
		total += item.Subtotal()
	}
	return total
}

// Count is the sum of line quantities.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int
	for _, item := range m.items {
		count += item.Quantity
	}
	return count
}

// Contains reports whether the product has a line in the cart.
func (m *Manager) Contains(productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range m.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// LastSyncErr returns the most recent persistence failure, or nil.
func (m *Manager) LastSyncErr() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSyncErr
}

// sync mirrors the cart to the active persistence targets. With a session
// the remote store is written and the local store kept as backup; without
// one only the local store is written. Failures are logged and recorded but
// never fail the mutation. Callers must hold m.mu.
func (m *Manager) sync(ctx context.Context) {
	m.lastSyncErr = nil

	if m.session != nil && m.remote != nil {
		if err := m.remote.Replace(ctx, m.session.UserID, m.items); err != nil {
			zap.S().Warnw("remote cart sync failed", "user_id", m.session.UserID, "error", err)
			m.lastSyncErr = err
		}
	}

	if m.local == nil {
		return
	}
	data, err := json.Marshal(m.items)
	if err == nil {
		err = m.local.Set(m.localKey, data)
	}
	if err != nil {
		zap.S().Warnw("local cart sync failed", "error", err)
		m.lastSyncErr = err
	}
}
