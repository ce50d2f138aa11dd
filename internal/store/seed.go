package store

import (
	"time"

	"github.com/gearstore/gearstore-api/internal/models"
)

func ptr(v float64) *float64 { return &v }

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// SeedCatalog returns the demo storefront catalog.
func SeedCatalog() *Catalog {
	banners := []models.Banner{
		{
			ID:          "1",
			Title:       "Summer Sale",
			Description: "Up to 50% off on selected items",
			Image:       "https://images.example.com/banners/summer-sale.jpg",
		},
		{
			ID:          "2",
			Title:       "New Arrivals",
			Description: "Check out our latest products",
			Image:       "https://images.example.com/banners/new-arrivals.jpg",
		},
	}

	categories := []models.Category{
		{ID: "1", Name: "Cases", Image: "https://images.example.com/categories/cases.jpg", Description: "Protect your device with our premium cases"},
		{ID: "2", Name: "Chargers", Image: "https://images.example.com/categories/chargers.jpg", Description: "Fast charging solutions for all your devices"},
		{ID: "3", Name: "Earphones", Image: "https://images.example.com/categories/earphones.jpg", Description: "Immersive audio experiences"},
		{ID: "4", Name: "Cables", Image: "https://images.example.com/categories/cables.jpg", Description: "Durable cables for charging and data"},
		{ID: "5", Name: "Speakers", Image: "https://images.example.com/categories/speakers.jpg", Description: "Room-filling portable sound"},
	}

	products := []models.Product{
		{
			ID:          "1",
			Name:        "Premium Silicone Case for iPhone 13",
			Brand:       "Apple",
			Price:       49.99,
			OldPrice:    ptr(59.99),
			Image:       "https://images.example.com/products/silicone-case.jpg",
			Description: "Silky, soft-touch silicone case with a microfiber lining. MagSafe compatible with precise cutouts for all ports and buttons.",
			Features: []string{
				"Made with high-quality silicone",
				"Soft microfiber lining inside",
				"MagSafe compatible",
				"Available in multiple colors",
			},
			Rating:      4.8,
			ReviewCount: 245,
			CategoryID:  "1",
			Variants: []models.ProductVariant{
				{ID: "v1", Name: "Black"},
				{ID: "v2", Name: "Blue"},
				{ID: "v3", Name: "Red"},
			},
			RelatedIDs: []string{"4", "6"},
			CreatedAt:  day("2023-03-15"),
		},
		{
			ID:          "2",
			Name:        "Fast Wireless Charger 15W",
			Brand:       "Anker",
			Price:       29.99,
			Image:       "https://images.example.com/products/wireless-charger.jpg",
			Description: "Qi-certified wireless charger delivering up to 15W with temperature control and foreign object detection.",
			Features: []string{
				"15W fast wireless charging",
				"Universal compatibility with Qi devices",
				"LED charging indicator",
			},
			Rating:      4.5,
			ReviewCount: 189,
			CategoryID:  "2",
			Variants: []models.ProductVariant{
				{ID: "v4", Name: "Black"},
				{ID: "v5", Name: "White"},
			},
			RelatedIDs: []string{"4"},
			CreatedAt:  day("2023-05-10"),
		},
		{
			ID:          "3",
			Name:        "Noise-Cancelling Wireless Earbuds",
			Brand:       "Sony",
			Price:       199.99,
			OldPrice:    ptr(249.99),
			Image:       "https://images.example.com/products/earbuds.jpg",
			Description: "Industry-leading noise cancellation with crisp, clear audio and a comfortable, secure fit for all-day listening.",
			Features: []string{
				"Active noise cancellation",
				"Up to 8 hours of battery life",
				"Water and sweat resistant (IPX4)",
				"Touch controls for easy operation",
			},
			Rating:      4.7,
			ReviewCount: 312,
			CategoryID:  "3",
			RelatedIDs:  []string{"5"},
			CreatedAt:   day("2023-06-01"),
		},
		{
			ID:          "4",
			Name:        "Braided USB-C to Lightning Cable (6ft)",
			Brand:       "Belkin",
			Price:       24.99,
			OldPrice:    ptr(29.99),
			Image:       "https://images.example.com/products/braided-cable.jpg",
			Description: "Premium double-braided nylon cable, MFi certified, supporting fast charging up to 20W.",
			Features: []string{
				"Premium double-braided nylon exterior",
				"MFi certified for iPhone compatibility",
				"Reinforced stress points for durability",
			},
			Rating:      4.6,
			ReviewCount: 178,
			CategoryID:  "4",
			RelatedIDs:  []string{"2"},
			CreatedAt:   day("2023-03-05"),
		},
		{
			ID:          "5",
			Name:        "Portable Bluetooth Speaker",
			Brand:       "JBL",
			Price:       129.99,
			OldPrice:    ptr(149.99),
			Image:       "https://images.example.com/products/speaker.jpg",
			Description: "Powerful portable speaker with deep bass, waterproof design and up to 20 hours of playtime.",
			Features: []string{
				"Powerful, room-filling sound",
				"Waterproof design (IPX7)",
				"Up to 20 hours of playtime",
			},
			Rating:      4.9,
			ReviewCount: 423,
			CategoryID:  "5",
			CreatedAt:   day("2023-04-15"),
		},
		{
			ID:          "6",
			Name:        "Rugged Phone Case with Card Holder",
			Brand:       "Spigen",
			Price:       34.99,
			Image:       "https://images.example.com/products/rugged-case.jpg",
			Description: "Dual-layer rugged case with military-grade drop protection and a hidden slot for up to 2 cards.",
			Features: []string{
				"Military-grade drop protection",
				"Hidden card slot holds up to 2 cards",
				"Wireless charging compatible",
			},
			Rating:      4.4,
			ReviewCount: 156,
			CategoryID:  "1",
			RelatedIDs:  []string{"1"},
			CreatedAt:   day("2023-01-20"),
		},
	}

	return NewCatalog(banners, categories, products)
}
