package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utafrali/storefront/internal/domain"
)

func TestSummarize_EmptyCollection(t *testing.T) {
	facets := Summarize(nil)

	assert.Empty(t, facets.Categories)
	// Documented fallback for an empty collection: a zero price range.
	assert.Equal(t, PriceRange{Min: 0, Max: 0}, facets.PriceRange)
}

func TestSummarize_DistinctCategories(t *testing.T) {
	products := testCatalog()
	products = append(products, testProduct("p9", "Spare Cable", "Electronics", 9.99))

	facets := Summarize(products)

	// "Electronics" dedupes case-insensitively against "electronics".
	assert.Len(t, facets.Categories, 5)
	assert.Equal(t, "electronics", facets.Categories[0])
}

func TestSummarize_PriceBounds(t *testing.T) {
	facets := Summarize(testCatalog())

	assert.Equal(t, 29.99, facets.PriceRange.Min)
	assert.Equal(t, 249.99, facets.PriceRange.Max)
}

func TestSummarize_SingleProduct(t *testing.T) {
	facets := Summarize([]domain.Product{testProduct("p1", "Mug", "home", 12.50)})

	assert.Equal(t, PriceRange{Min: 12.50, Max: 12.50}, facets.PriceRange)
	assert.Equal(t, []string{"home"}, facets.Categories)
}
