// Package search implements binary searches over sorted sub-ranges of slices.
//
// LowerBound and UpperBound follow the semantics of the C++ standard library
// algorithms of the same name, operating on the half-open range [begin, end):
//
//	s := []int{1, 3, 3, 3, 5}
//
//	lo, _ := search.LowerBound(s, 0, len(s), 3) // 1, first element >= 3
//	hi, _ := search.UpperBound(s, 0, len(s), 3) // 4, first element > 3
//
// Every index in [lo, hi) holds an element equal to the searched value, and
// lo == hi is the insertion point when no such element exists.
//
// # Ordering
//
// The plain variants use the natural order of cmp.Ordered types. The Func
// variants accept a three-way comparator for any element type, and Compare
// adapts types with a Compare method (time.Time, for instance):
//
//	i, err := search.LowerBoundFunc(events, 0, len(events), cutoff,
//		func(e Event, t time.Time) int { return e.At.Compare(t) })
//
// # Preconditions
//
// The searched range must be sorted ascending. Sortedness is not checked by
// the search functions, which run in O(log n) without allocating. IsSorted and
// IsSortedFunc perform that O(n) verification when the input is untrusted.
//
// Indexes outside 0 <= begin <= end <= len(s) produce an error wrapping
// check.ErrInvalidArgument.
package search
