package query

import (
	"strconv"
	"strings"

	"github.com/utafrali/storefront/internal/domain"
)

// Predicate is a boolean test applied to a product to decide filter inclusion.
type Predicate func(domain.Product) bool

// buildPredicates translates the query's filter fields into one predicate per
// active dimension. Absent or sentinel values ("", "all") produce no
// predicate; malformed price bounds are skipped rather than surfaced as
// errors. The dimensions combine with logical AND.
func buildPredicates(q Query) []Predicate {
	var preds []Predicate

	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		preds = append(preds, func(p domain.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term) ||
				strings.Contains(strings.ToLower(p.Category), term)
		})
	}

	if cat := strings.TrimSpace(q.Category); cat != "" && !strings.EqualFold(cat, CategoryAll) {
		preds = append(preds, func(p domain.Product) bool {
			return strings.EqualFold(p.Category, cat)
		})
	}

	if min, ok := parsePrice(q.MinPrice); ok {
		preds = append(preds, func(p domain.Product) bool {
			return p.Price >= min
		})
	}

	if max, ok := parsePrice(q.MaxPrice); ok {
		preds = append(preds, func(p domain.Product) bool {
			return p.Price <= max
		})
	}

	if q.InStock {
		preds = append(preds, func(p domain.Product) bool {
			return p.Stock > 0
		})
	}

	if q.MinRating > 0 {
		preds = append(preds, func(p domain.Product) bool {
			return p.Rating >= q.MinRating
		})
	}

	return preds
}

// matches reports whether the product satisfies every predicate.
func matches(p domain.Product, preds []Predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

// parsePrice parses a raw price bound. The second return value is false when
// the bound is absent or unparseable, in which case the filter is not applied.
func parsePrice(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
