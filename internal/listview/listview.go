// Package listview implements the filter/sort/paginate transform shared by
// the report table and the commodity catalog. One generic engine is
// configured per entity type instead of duplicating the logic per view.
package listview

import "sort"

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Query describes one view over a list: predicates are ANDed in order,
// Compare selects the sort order (nil keeps input order), and Page/PageSize
// select the visible window.
type Query[T any] struct {
	Predicates []func(T) bool
	Compare    func(a, b T) int
	Direction  Direction
	Page       int
	PageSize   int
}

// Apply filters, sorts and slices items. It returns the visible page and the
// total number of records passing all predicates, independent of pagination.
// The input slice is never mutated and the sort is stable: records comparing
// equal keep their relative input order. A page beyond the available range
// yields an empty slice, not an error.
func Apply[T any](items []T, q Query[T]) ([]T, int) {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, q.Predicates) {
			filtered = append(filtered, item)
		}
	}
	total := len(filtered)

	if q.Compare != nil {
		sign := 1
		if q.Direction == Desc {
			sign = -1
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			return sign*q.Compare(filtered[i], filtered[j]) < 0
		})
	}

	if q.PageSize <= 0 {
		return []T{}, total
	}
	start := q.Page * q.PageSize
	if q.Page < 0 || start >= total {
		return []T{}, total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}
	return filtered[start:end], total
}

func matches[T any](item T, predicates []func(T) bool) bool {
	for _, predicate := range predicates {
		if !predicate(item) {
			return false
		}
	}
	return true
}
