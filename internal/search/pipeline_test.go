package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearstore/gearstore-api/internal/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Premium Silicone Case", Description: "Soft-touch case", Price: 39.99, Rating: 4.5, CategoryID: "cases", CreatedAt: time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Fast Wireless Charger", Description: "Qi-certified charger", Price: 199.99, Rating: 4.7, CategoryID: "chargers", CreatedAt: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Name: "Phone Stand", Description: "Adjustable aluminum stand", Price: 24.99, Rating: 4.4, CategoryID: "stands", CreatedAt: time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC)},
	}
}

func TestApply_EmptyFiltersIsExplicitEmptyState(t *testing.T) {
	results := Apply(testCatalog(), Filters{SortBy: SortPriceAsc})
	assert.Empty(t, results)
}

func TestApply_QueryMatchesNameCaseInsensitive(t *testing.T) {
	results := Apply(testCatalog(), Filters{Query: "case"})

	require.Len(t, results, 1)
	assert.Equal(t, "Premium Silicone Case", results[0].Name)
}

func TestApply_QueryMatchesDescription(t *testing.T) {
	results := Apply(testCatalog(), Filters{Query: "aluminum"})

	require.Len(t, results, 1)
	assert.Equal(t, "Phone Stand", results[0].Name)
}

func TestApply_CategoryFilter(t *testing.T) {
	results := Apply(testCatalog(), Filters{CategoryID: "chargers"})

	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].ID)
}

func TestApply_PriceRangeInclusiveBounds(t *testing.T) {
	results := Apply(testCatalog(), Filters{PriceRange: "24.99-39.99"})

	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "3", results[1].ID)
}

func TestApply_MalformedPriceRangeIgnored(t *testing.T) {
	for _, bad := range []string{"cheap", "10-", "-", "50-10"} {
		results := Apply(testCatalog(), Filters{PriceRange: bad})
		// A malformed range is dropped but still counts as "active" input,
		// so the whole catalog comes back.
		assert.Len(t, results, 3, "range %q", bad)
	}
}

func TestApply_SortPriceAsc(t *testing.T) {
	results := Apply(testCatalog(), Filters{Query: "e", SortBy: SortPriceAsc})

	require.Len(t, results, 3)
	assert.Equal(t, []float64{24.99, 39.99, 199.99}, prices(results))
}

func TestApply_SortPriceDesc(t *testing.T) {
	results := Apply(testCatalog(), Filters{Query: "e", SortBy: SortPriceDesc})

	require.Len(t, results, 3)
	assert.Equal(t, []float64{199.99, 39.99, 24.99}, prices(results))
}

func TestApply_SortNewest(t *testing.T) {
	results := Apply(testCatalog(), Filters{Query: "e", SortBy: SortNewest})

	require.Len(t, results, 3)
	assert.Equal(t, "2", results[0].ID)
	assert.Equal(t, "1", results[1].ID)
	assert.Equal(t, "3", results[2].ID)
}

func TestApply_SortRating(t *testing.T) {
	results := Apply(testCatalog(), Filters{Query: "e", SortBy: SortRating})

	require.Len(t, results, 3)
	assert.Equal(t, "2", results[0].ID)
}

func TestApply_SortPopularKeepsCatalogOrder(t *testing.T) {
	results := Apply(testCatalog(), Filters{Query: "e", SortBy: SortPopular})

	require.Len(t, results, 3)
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "2", results[1].ID)
	assert.Equal(t, "3", results[2].ID)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	Apply(catalog, Filters{Query: "e", SortBy: SortPriceAsc})

	assert.Equal(t, "1", catalog[0].ID)
	assert.Equal(t, "2", catalog[1].ID)
	assert.Equal(t, "3", catalog[2].ID)
}

func prices(products []models.Product) []float64 {
	out := make([]float64, len(products))
	for i, p := range products {
		out[i] = p.Price
	}
	return out
}
