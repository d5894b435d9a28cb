// Package query implements the catalog query engine: a pure pipeline that
// filters, sorts, and paginates in-memory record collections and derives
// facet metadata. It never mutates its input and never fails on malformed
// query parameters; they are normalized or skipped instead.
package query

import "github.com/utafrali/storefront/internal/domain"

// Sort keys accepted by the engine.
const (
	SortName     = "name"
	SortPrice    = "price"
	SortRating   = "rating"
	SortCategory = "category"
	SortNewest   = "newest"
)

// Sort directions.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// CategoryAll is the sentinel category value meaning "do not filter".
const CategoryAll = "all"

// Query holds the search, filter, sort, and pagination parameters for one
// catalog lookup. Price bounds are kept as raw strings: unparseable values
// mean the corresponding filter is skipped, never an error.
type Query struct {
	Search    string
	Category  string
	MinPrice  string
	MaxPrice  string
	InStock   bool
	MinRating float64
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Pagination describes the window of a paginated result.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// PriceRange holds the minimum and maximum price across a collection.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Facets summarizes the filter options available over the full, unfiltered
// collection. It is deliberately independent of any active filters so that
// filter options do not shrink as users narrow their query.
type Facets struct {
	Categories []string   `json:"categories"`
	PriceRange PriceRange `json:"price_range"`
}

// Result is the composite output of one query: the records for the requested
// page plus pagination and facet metadata.
type Result struct {
	Records    []domain.Product `json:"records"`
	Pagination Pagination       `json:"pagination"`
	Facets     Facets           `json:"facets"`
}

// IsValidSortKey checks whether the given key is one the engine sorts on.
// Unknown keys are not an error; the engine preserves input order for them.
func IsValidSortKey(key string) bool {
	switch key {
	case SortName, SortPrice, SortRating, SortCategory, SortNewest:
		return true
	}
	return false
}

// normalize coerces pagination parameters to sane values: page >= 1 and
// 1 <= limit <= MaxLimit, falling back to the defaults.
func (q *Query) normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}
