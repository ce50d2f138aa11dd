package models

import "time"

// OrderStatus is the lifecycle of an order. Progression is strictly linear
// (pending -> processing -> shipped -> delivered); cancellation is allowed
// from any non-terminal status.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsTerminal reports whether the status can never change again.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Next returns the following status on the linear progression and false when
// the status is terminal.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusProcessing, true
	case OrderStatusProcessing:
		return OrderStatusShipped, true
	case OrderStatusShipped:
		return OrderStatusDelivered, true
	default:
		return s, false
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem is a snapshot of a cart line at checkout time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
	Variant   string  `json:"variant,omitempty"`
}

// ShippingAddress holds the delivery details collected during checkout.
type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zipCode,omitempty"`
	Country   string `json:"country,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// PaymentMethod is the redacted descriptor stored on an order. Only the
// card's last four digits survive checkout.
type PaymentMethod struct {
	Type     string `json:"type"`
	LastFour string `json:"lastFour,omitempty"`
}

// Order is a placed order with its line-item snapshots and totals.
type Order struct {
	ID       string      `json:"id"`
	Number   string      `json:"orderNumber"`
	UserID   string      `json:"userId"`
	Items    []OrderItem `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Tax      float64     `json:"tax"`
	Total    float64     `json:"total"`
	Status   OrderStatus `json:"status"`

	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Payment         PaymentMethod   `json:"paymentMethod"`

	TrackingNumber string    `json:"trackingNumber,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
