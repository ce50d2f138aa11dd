package handlers

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gearstore/gearstore-api/internal/cart"
	"github.com/gearstore/gearstore-api/internal/checkout"
	"github.com/gearstore/gearstore-api/internal/keystore"
	"github.com/gearstore/gearstore-api/internal/models"
	"github.com/gearstore/gearstore-api/internal/store"
)

// Handlers holds all dependencies for the HTTP handlers.
type Handlers struct {
	Catalog *store.Catalog
	Carts   *store.Carts
	Orders  *store.Orders
	Users   *store.Users
	Keys    *keystore.Store

	mu        sync.Mutex
	checkouts map[string]*checkout.Workflow
}

func New(catalog *store.Catalog, carts *store.Carts, orders *store.Orders, users *store.Users, keys *keystore.Store) *Handlers {
	return &Handlers{
		Catalog:   catalog,
		Carts:     carts,
		Orders:    orders,
		Users:     users,
		Keys:      keys,
		checkouts: make(map[string]*checkout.Workflow),
	}
}

// userID reads the id the auth middleware stored on the context.
func userID(c *gin.Context) string {
	raw, _ := c.Get("userID")
	id, _ := raw.(string)
	return id
}

// newCartManager builds the authenticated cart manager for the given user.
// The local keystore is kept as a per-user backup mirror.
func (h *Handlers) newCartManager(id string) *cart.Manager {
	m := cart.NewManager(h.Carts, h.Keys)
	m.SetLocalKey("cart:" + id)
	m.SetSession(&cart.Session{UserID: id})
	return m
}

// cartManager builds the manager for this request and loads its state from
// the remote store.
func (h *Handlers) cartManager(c *gin.Context) (*cart.Manager, error) {
	m := h.newCartManager(userID(c))
	if err := m.Load(c.Request.Context()); err != nil {
		return nil, err
	}
	return m, nil
}

// liveCart is the checkout workflow's view of a user's cart. It reloads the
// stored cart on every call, so items added or removed while the checkout is
// in flight show up in the review totals, in the placed order, and in the
// final clear.
type liveCart struct {
	h      *Handlers
	userID string
}

func (lc *liveCart) load(ctx context.Context) *cart.Manager {
	m := lc.h.newCartManager(lc.userID)
	if err := m.Load(ctx); err != nil {
		zap.S().Warnw("checkout cart load failed", "user_id", lc.userID, "error", err)
	}
	return m
}

func (lc *liveCart) Items() []models.CartItem {
	return lc.load(context.Background()).Items()
}

func (lc *liveCart) Total() float64 {
	return lc.load(context.Background()).Total()
}

func (lc *liveCart) Clear(ctx context.Context) {
	lc.load(ctx).Clear(ctx)
}

// workflow returns the user's in-flight checkout, if any.
func (h *Handlers) workflow(id string) (*checkout.Workflow, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	wf, ok := h.checkouts[id]
	return wf, ok
}

func (h *Handlers) setWorkflow(id string, wf *checkout.Workflow) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkouts[id] = wf
}
