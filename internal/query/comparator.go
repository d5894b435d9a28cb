package query

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/utafrali/storefront/internal/domain"
)

// Comparator defines the relative order between two products for a sort key.
// It returns a negative value when a sorts before b, positive when after, and
// zero on ties so a stable sort preserves input order.
type Comparator func(a, b domain.Product) int

// comparatorFor builds the total order for the given sort key and direction.
// A nil return means the key is unknown and input order must be preserved;
// this is a policy decision, not an error.
//
// The "newest" key orders most-recent-first by nature: an unset direction
// keeps that order, an explicit "asc" reverses to oldest-first. For all other
// keys the unset direction defaults to ascending.
func comparatorFor(sortBy, sortOrder string) Comparator {
	var cmp Comparator

	switch sortBy {
	case SortPrice:
		cmp = func(a, b domain.Product) int {
			return compareFloat(a.Price, b.Price)
		}
	case SortRating:
		cmp = func(a, b domain.Product) int {
			return compareFloat(a.Rating, b.Rating)
		}
	case SortName:
		coll := newCollator()
		cmp = func(a, b domain.Product) int {
			return coll.CompareString(a.Name, b.Name)
		}
	case SortCategory:
		coll := newCollator()
		cmp = func(a, b domain.Product) int {
			return coll.CompareString(a.Category, b.Category)
		}
	case SortNewest:
		cmp = func(a, b domain.Product) int {
			switch {
			case a.CreatedAt.Before(b.CreatedAt):
				return -1
			case a.CreatedAt.After(b.CreatedAt):
				return 1
			default:
				return 0
			}
		}
		if sortOrder == "" {
			sortOrder = OrderDesc
		}
	default:
		return nil
	}

	if sortOrder == OrderDesc {
		inner := cmp
		cmp = func(a, b domain.Product) int {
			return -inner(a, b)
		}
	}

	return cmp
}

// newCollator returns a case-insensitive, locale-aware collator. A fresh
// collator is built per comparator because collate.Collator carries internal
// buffers and is not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
