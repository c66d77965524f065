package search

import (
	"cmp"

	"github.com/pseudomuto/primitive/pkg/check"
)

// Comparer is implemented by types that define their own total order, such as
// time.Time. Compare returns a negative number when the receiver sorts before
// other, zero when they are equivalent and a positive number otherwise.
type Comparer[T any] interface {
	Compare(other T) int
}

// Compare adapts a Comparer to the comparator signature expected by
// LowerBoundFunc and UpperBoundFunc.
//
// Example:
//
//	i, err := search.LowerBoundFunc(times, 0, len(times), t, search.Compare[time.Time])
func Compare[T Comparer[T]](a, b T) int {
	return a.Compare(b)
}

// LowerBound returns the index of the first element in s[begin:end] that is
// not less than value. When no such element exists it returns end.
//
// The range must be sorted ascending. This is not verified; use IsSorted when
// the input is untrusted. Floats are ordered by cmp.Less, which places NaN
// before every other value.
//
// An error wrapping check.ErrInvalidArgument is returned unless
// 0 <= begin <= end <= len(s).
//
// Example:
//
//	i, _ := search.LowerBound([]int{1, 3, 3, 3, 5}, 0, 5, 3)
//	// i == 1
func LowerBound[T cmp.Ordered](s []T, begin, end int, value T) (int, error) {
	return LowerBoundFunc(s, begin, end, value, cmp.Compare[T])
}

// UpperBound returns the index of the first element in s[begin:end] that is
// strictly greater than value. When no such element exists it returns end.
//
// Preconditions and errors are the same as for LowerBound.
//
// Example:
//
//	i, _ := search.UpperBound([]int{1, 3, 3, 3, 5}, 0, 5, 3)
//	// i == 4
func UpperBound[T cmp.Ordered](s []T, begin, end int, value T) (int, error) {
	return UpperBoundFunc(s, begin, end, value, cmp.Compare[T])
}

// LowerBoundFunc is LowerBound for element types without a natural order.
// The comparator receives an element and the key and returns a negative
// number when the element sorts before the key, zero when they are equal and
// a positive number when it sorts after.
func LowerBoundFunc[E, K any](s []E, begin, end int, key K, compare func(E, K) int) (int, error) {
	if err := check.Range(begin, end, len(s)); err != nil {
		return 0, err
	}

	index, n := begin, end-begin
	for n > 0 {
		half := n / 2
		middle := index + half
		if compare(s[middle], key) < 0 {
			index = middle + 1
			n -= half + 1
		} else {
			n = half
		}
	}

	return index, nil
}

// UpperBoundFunc is UpperBound for element types without a natural order. The
// comparator has the same contract as for LowerBoundFunc.
func UpperBoundFunc[E, K any](s []E, begin, end int, key K, compare func(E, K) int) (int, error) {
	if err := check.Range(begin, end, len(s)); err != nil {
		return 0, err
	}

	index, n := begin, end-begin
	for n > 0 {
		half := n / 2
		middle := index + half
		if compare(s[middle], key) > 0 {
			n = half
		} else {
			index = middle + 1
			n -= half + 1
		}
	}

	return index, nil
}

// EqualRange returns the half-open range [lower, upper) of elements in
// s[begin:end] equal to value. Both indexes equal the insertion point when no
// element matches.
func EqualRange[T cmp.Ordered](s []T, begin, end int, value T) (lower, upper int, err error) {
	return EqualRangeFunc(s, begin, end, value, cmp.Compare[T])
}

// EqualRangeFunc is EqualRange with a caller-supplied comparator.
func EqualRangeFunc[E, K any](s []E, begin, end int, key K, compare func(E, K) int) (lower, upper int, err error) {
	if lower, err = LowerBoundFunc(s, begin, end, key, compare); err != nil {
		return 0, 0, err
	}

	// Everything before lower is already known to be less than key.
	if upper, err = UpperBoundFunc(s, lower, end, key, compare); err != nil {
		return 0, 0, err
	}

	return lower, upper, nil
}

// IsSorted reports whether s[begin:end] is sorted ascending under cmp.Less.
func IsSorted[T cmp.Ordered](s []T, begin, end int) (bool, error) {
	return IsSortedFunc(s, begin, end, cmp.Compare[T])
}

// IsSortedFunc reports whether s[begin:end] is sorted ascending under compare.
func IsSortedFunc[E any](s []E, begin, end int, compare func(E, E) int) (bool, error) {
	if err := check.Range(begin, end, len(s)); err != nil {
		return false, err
	}

	for i := begin + 1; i < end; i++ {
		if compare(s[i], s[i-1]) < 0 {
			return false, nil
		}
	}

	return true, nil
}
