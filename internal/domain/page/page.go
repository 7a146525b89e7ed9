// Package page provides zero-based pagination request and result types.
package page

import "math"

// Request selects one page of an ordered collection. Number is zero-based;
// Size is the number of items per page and must be positive.
type Request struct {
	Number int
	Size   int
}

// Offset returns the number of items preceding the requested page. ok is
// false when that number does not fit in an int; such a page lies past any
// stored collection.
func (r Request) Offset() (offset int, ok bool) {
	if r.Size > 0 && r.Number > math.MaxInt/r.Size {
		return 0, false
	}
	return r.Number * r.Size, true
}

// Result is one page of items plus the total number of items across all pages.
type Result[T any] struct {
	Items  []T
	Total  int64
	Number int
	Size   int
}

// NewResult builds a Result for the given request. A nil items slice is
// replaced with an empty one so callers can always range or encode it.
func NewResult[T any](req Request, items []T, total int64) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Items:  items,
		Total:  total,
		Number: req.Number,
		Size:   req.Size,
	}
}

// TotalPages returns the number of pages needed for Total items.
func (r Result[T]) TotalPages() int {
	if r.Size <= 0 || r.Total == 0 {
		return 0
	}
	return int((r.Total + int64(r.Size) - 1) / int64(r.Size))
}
