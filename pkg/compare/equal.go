package compare

import (
	"math"
	"reflect"

	"golang.org/x/text/cases"
)

type mode uint8

const (
	bitwise mode = iota
	tolerant
	folded
)

// options carries the comparison mode through a single top-level call. It is
// never shared between calls, which keeps the case folder goroutine-local.
type options struct {
	mode    mode
	epsilon float64
	caser   *cases.Caser
}

func (o *options) fold(s string) string {
	if o.caser == nil {
		c := cases.Fold()
		o.caser = &c
	}

	return o.caser.String(s)
}

// Equal reports whether a and b are structurally equal.
//
// Values are equal when they are the same reference, when both are nil, or
// when they have the same shape and equal contents:
//
//   - arrays and slices have the same length and pairwise equal elements
//   - collections have the same Len and pairwise equal elements in iteration order
//   - maps pair every key with a distinct equal key mapped to an equal value
//   - scalars have the same dynamic type and equal values
//
// Pointers are compared by the values they point to. Floats compare by their
// IEEE 754 bit pattern, so NaN equals a NaN with the same bits while 0.0 and
// -0.0 differ. This keeps Equal consistent with hashing the bits.
//
// Types with an Equal(T) bool method decide their own equality; structs
// without one are compared field by field.
//
// Example:
//
//	compare.Equal([][]int{{1, 2}, {3, 4}}, [][]int{{1, 2}, {3, 4}}) // true
//	compare.Equal(0.0, math.Copysign(0, -1))                        // false
func Equal(a, b any) bool {
	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b), &options{mode: bitwise})
}

// ValueEqual is like Equal, but floats (and the parts of complex numbers)
// are equal when they differ by at most epsilon. NaN is only value-equal to
// NaN. A negative epsilon accepts identical values only.
//
// Value-equal floats can have different bit patterns, so ValueEqual must not
// back a hash-consistent equality.
//
// Example:
//
//	compare.ValueEqual([]float64{0.1 + 0.2}, []float64{0.3}, 1e-9) // true
func ValueEqual(a, b any, epsilon float64) bool {
	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b), &options{mode: tolerant, epsilon: epsilon})
}

// EqualFold is like Equal, but strings are compared under Unicode case
// folding wherever they occur, including inside arrays, collections, map keys
// and map values.
//
// Example:
//
//	compare.EqualFold([]string{"a", "b"}, []string{"a", "B"}) // true
func EqualFold(a, b any) bool {
	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b), &options{mode: folded})
}

func equalValues(a, b reflect.Value, o *options) bool {
	if identical(a, b) {
		return true
	}

	a, b = unbox(a), unbox(b)
	if !a.IsValid() || !b.IsValid() {
		return !a.IsValid() && !b.IsValid()
	}

	if a.Type() == b.Type() {
		return planFor(a.Type())(a, b, o)
	}

	shape := shapeOf(a.Type())
	if shape != shapeOf(b.Type()) {
		return false
	}

	switch shape {
	case ShapeArray:
		return equalSequences(a, b, o)
	case ShapeCollection:
		if !a.CanInterface() || !b.CanInterface() {
			return false
		}
		return equalCollections(a.Interface().(Collection), b.Interface().(Collection), o)
	case ShapeMap:
		return equalMaps(a, b, o)
	}

	// Scalars of different types are never equal.
	return false
}

// identical reports whether a and b are the same reference.
func identical(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() || a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Len() == b.Len() && a.Pointer() == b.Pointer()
	}

	return false
}

// equalSequences compares arrays or slices whose element types differ, e.g.
// []int against []any.
func equalSequences(a, b reflect.Value, o *options) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Len() {
		if !equalValues(a.Index(i), b.Index(i), o) {
			return false
		}
	}

	return true
}

func equalFloats(a, b float64, o *options) bool {
	if o.mode == tolerant {
		return within(a, b, o.epsilon)
	}

	return math.Float64bits(a) == math.Float64bits(b)
}

func equalFloat32s(a, b float64, o *options) bool {
	if o.mode == tolerant {
		return within(a, b, o.epsilon)
	}

	return math.Float32bits(float32(a)) == math.Float32bits(float32(b))
}

func within(a, b, epsilon float64) bool {
	if a == b {
		return true
	}

	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		return aNaN && bNaN
	}

	return math.Abs(a-b) <= epsilon
}
