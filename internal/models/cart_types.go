package models

// CartItem is one line of the cart. Name, brand, price and image are
// snapshots taken when the item was added, so the cart keeps rendering even
// if the catalog entry changes later. ProductID is the merge key: adding the
// same product again bumps the quantity instead of appending a new line.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Variant   string  `json:"variant,omitempty"`
}

// Subtotal is the line total for this item.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
