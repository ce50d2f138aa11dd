// Package search implements the product search/filter/sort pipeline as a
// pure function over the catalog. Callers re-run it on every input change;
// there is no caching and no debouncing at this layer.
package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gearstore/gearstore-api/internal/models"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortPopular keeps the incoming catalog order. No real popularity
	// signal exists, so this is the stable default.
	SortPopular   SortKey = "popular"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
)

// Filters is one search input. PriceRange is an inclusive "min-max" encoded
// string (e.g. "25-50"); malformed values are ignored.
type Filters struct {
	Query      string
	CategoryID string
	PriceRange string
	SortBy     SortKey
}

// Active reports whether any narrowing filter is set. A blank query with no
// category and no price range is the explicit empty initial state: Apply
// returns no results rather than the whole catalog.
func (f Filters) Active() bool {
	return strings.TrimSpace(f.Query) != "" || f.CategoryID != "" || f.PriceRange != ""
}

// Apply runs the pipeline in fixed order: text filter, category filter,
// price-range filter, sort. The input slice is never mutated.
func Apply(products []models.Product, f Filters) []models.Product {
	if !f.Active() {
		return []models.Product{}
	}

	results := make([]models.Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(f.Query))
	min, max, priceOK := parsePriceRange(f.PriceRange)

	for _, p := range products {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if priceOK && (p.Price < min || p.Price > max) {
			continue
		}
		results = append(results, p)
	}

	sortResults(results, f.SortBy)
	return results
}

// matchesQuery does a case-insensitive substring match on name and
// description.
func matchesQuery(p models.Product, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(p.Name), loweredQuery) ||
		strings.Contains(strings.ToLower(p.Description), loweredQuery)
}

func sortResults(results []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price < results[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price > results[j].Price
		})
	case SortNewest:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		})
	case SortRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	default:
		// popular / unknown: keep catalog order
	}
}

// parsePriceRange decodes a "min-max" string into inclusive bounds.
func parsePriceRange(s string) (min, max float64, ok bool) {
	if s == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, errMin := parseBound(parts[0])
	max, errMax := parseBound(parts[1])
	if errMin != nil || errMax != nil || min > max {
		return 0, 0, false
	}
	return min, max, true
}

func parseBound(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
