package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gearstore/gearstore-api/internal/models"
)

var (
	// ErrOrderNotFound is returned on lookup misses, including orders that
	// belong to a different user.
	ErrOrderNotFound = errors.New("store: order not found")
	// ErrOrderTerminal is returned when a status change is requested on a
	// delivered or cancelled order.
	ErrOrderTerminal = errors.New("store: order is in a terminal status")
	// ErrEmptyOrder is returned when Place is called with no items.
	ErrEmptyOrder = errors.New("store: order has no items")
)

// taxRate is the fixed rate applied to every order total.
const taxRate = 0.08

// Orders holds placed orders in memory.
type Orders struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
	byUser map[string][]string
	seq    int
	now    func() time.Time
}

func NewOrders() *Orders {
	return &Orders{
		orders: make(map[string]*models.Order),
		byUser: make(map[string][]string),
		now:    time.Now,
	}
}

// Place snapshots the given cart lines into a new processing order.
func (o *Orders) Place(_ context.Context, userID string, items []models.CartItem, shipping models.ShippingAddress, payment models.PaymentMethod) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	var subtotal float64
	snapshots := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		subtotal += item.Subtotal()
		snapshots = append(snapshots, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			Variant:   item.Variant,
		})
	}
	tax := subtotal * taxRate

	o.seq++
	now := o.now()
	order := &models.Order{
		ID:              uuid.NewString(),
		Number:          fmt.Sprintf("ORD-%d-%03d", now.Year(), o.seq),
		UserID:          userID,
		Items:           snapshots,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           subtotal + tax,
		Status:          models.OrderStatusProcessing,
		ShippingAddress: shipping,
		Payment:         payment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	o.orders[order.ID] = order
	o.byUser[userID] = append(o.byUser[userID], order.ID)
	return *order, nil
}

// List returns the user's orders, newest first.
func (o *Orders) List(_ context.Context, userID string) ([]models.Order, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	ids := o.byUser[userID]
	results := make([]models.Order, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		results = append(results, *o.orders[ids[i]])
	}
	return results, nil
}

// Get returns one of the user's orders by id.
func (o *Orders) Get(_ context.Context, userID, orderID string) (models.Order, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	order, ok := o.orders[orderID]
	if !ok || order.UserID != userID {
		return models.Order{}, ErrOrderNotFound
	}
	return *order, nil
}

// Cancel moves a non-terminal order to cancelled and touches its updated
// timestamp. Delivered and already-cancelled orders are rejected.
func (o *Orders) Cancel(_ context.Context, userID, orderID string) (models.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	order, ok := o.orders[orderID]
	if !ok || order.UserID != userID {
		return models.Order{}, ErrOrderNotFound
	}
	if order.Status.IsTerminal() {
		return models.Order{}, ErrOrderTerminal
	}
	order.Status = models.OrderStatusCancelled
	order.UpdatedAt = o.now()
	return *order, nil
}

// Advance moves an order one step forward along the linear progression
// (pending -> processing -> shipped -> delivered).
func (o *Orders) Advance(_ context.Context, orderID string) (models.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	order, ok := o.orders[orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	next, ok := order.Status.Next()
	if !ok {
		return models.Order{}, ErrOrderTerminal
	}
	order.Status = next
	order.UpdatedAt = o.now()
	return *order, nil
}
