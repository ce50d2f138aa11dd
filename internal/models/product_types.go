package models

import "time"

// Category groups products for browsing and filtering.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
}

// Banner is a promotional entry shown on the storefront home screen.
type Banner struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Product is a catalog entry. OldPrice is the crossed-out list price and is
// nil when the product is not discounted.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       float64  `json:"price"`
	OldPrice    *float64 `json:"oldPrice,omitempty"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	CategoryID  string   `json:"categoryId"`

	Variants   []ProductVariant `json:"variants,omitempty"`
	RelatedIDs []string         `json:"relatedIds,omitempty"`

	// CreatedAt only drives the "newest" sort order.
	CreatedAt time.Time `json:"createdAt"`
}

// ProductVariant is a selectable option (color, pack size). Price overrides
// the product price when set.
type ProductVariant struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price *float64 `json:"price,omitempty"`
}
