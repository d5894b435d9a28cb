package query

import (
	"strings"

	"github.com/utafrali/storefront/internal/domain"
)

// Summarize derives facet metadata from the full, unfiltered collection:
// the distinct category values (first-seen order, case-insensitive
// uniqueness) and the minimum and maximum price. Facets are always computed
// before filtering so available options do not shrink as users filter.
//
// An empty collection yields an empty category list and a {0, 0} price range;
// the zero fallback is deliberate so callers never see sentinel infinities.
func Summarize(products []domain.Product) Facets {
	if len(products) == 0 {
		return Facets{Categories: []string{}, PriceRange: PriceRange{}}
	}

	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0, len(products))
	pr := PriceRange{Min: products[0].Price, Max: products[0].Price}

	for _, p := range products {
		key := strings.ToLower(p.Category)
		if _, ok := seen[key]; !ok && key != "" {
			seen[key] = struct{}{}
			categories = append(categories, p.Category)
		}
		if p.Price < pr.Min {
			pr.Min = p.Price
		}
		if p.Price > pr.Max {
			pr.Max = p.Price
		}
	}

	return Facets{Categories: categories, PriceRange: pr}
}
