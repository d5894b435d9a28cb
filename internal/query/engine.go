package query

import (
	"sort"

	"github.com/utafrali/storefront/internal/domain"
)

// Run executes the full query pipeline over the given collection:
// filter, then sort, then paginate, with facets computed separately from the
// original unfiltered collection. The input slice is never mutated; every
// stage operates on a copy.
//
// Pagination must come last: slicing the window before filtering or sorting
// would silently truncate the candidate set.
func Run(products []domain.Product, q Query) *Result {
	q.normalize()

	preds := buildPredicates(q)

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, preds) {
			filtered = append(filtered, p)
		}
	}

	if cmp := comparatorFor(q.SortBy, q.SortOrder); cmp != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return cmp(filtered[i], filtered[j]) < 0
		})
	}

	records, pagination := paginate(filtered, q.Page, q.Limit)

	return &Result{
		Records:    records,
		Pagination: pagination,
		Facets:     Summarize(products),
	}
}
