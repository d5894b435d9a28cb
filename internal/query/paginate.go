package query

// paginate applies offset/limit windowing to an already filtered and sorted
// sequence and computes the pagination metadata. Page and limit must already
// be normalized. An out-of-range page yields an empty window, never an error.
func paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	total := len(items)

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	window := make([]T, end-offset)
	copy(window, items[offset:end])

	return window, Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page*limit < total,
		HasPrev:    page > 1,
	}
}

// Paginate windows an arbitrary sequence with the engine's coercion rules:
// non-positive page or limit fall back to the defaults. It is exported for
// callers that paginate outside the product pipeline, such as order listings.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return paginate(items, page, limit)
}
