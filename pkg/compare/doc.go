// Package compare provides structural equality over arbitrarily nested values.
//
// Three entry points share one dispatcher and differ only in how leaves are
// compared:
//
//   - Equal compares floats by their IEEE 754 bits, which keeps it consistent
//     with hashing: NaN equals an identical NaN, 0.0 differs from -0.0.
//   - ValueEqual compares floats within a tolerance, NaN matching only NaN.
//   - EqualFold compares strings under Unicode case folding.
//
// # Shapes
//
// Every value is classified once per type into a Shape (nil, scalar, array,
// collection or map). Values of different shapes are unequal. Arrays and
// slices are compared element-wise, which covers multi-dimensional arrays
// since each row is itself a slice:
//
//	compare.Equal([][]int{{1, 2}, {3, 4}}, [][]int{{1, 2}, {3, 4}}) // true
//	compare.Equal([][]int{{1, 2}, {3, 4}}, [][]int{{1, 2}, {3, 5}}) // false
//
// Pointers act as boxes and are compared by what they point to, so
// Equal(&x, x) holds. Slices with different element types are still compared
// element-wise, so decoded documents ([]any) compare against typed slices.
//
// Collection lets other container types take part. Collections are compared
// pairwise in iteration order, even when they are sets:
//
//	compare.Equal(compare.ListOf(1, 2), compare.ListOf(1, 2)) // true
//
// # Delegation
//
// A type with an Equal(T) bool method, such as time.Time, decides its own
// equality. Other structs are compared field by field using the same rules.
//
// # Limits
//
// The functions are total: they never panic or fail for any input, except
// that cyclic values (a slice containing itself) recurse without bound.
//
// A value reached through an unexported struct field cannot be handed to its
// Equal method, so it is compared by representation instead. Two time.Time
// values for the same instant in different locations are therefore equal as
// exported fields but unequal inside an unexported one.
//
// Maps whose keys are only equal under looser rules, such as tolerant floats
// or folded strings, are matched pairwise. That costs a comparison of every
// key of one map with every key of the other.
//
// Floats and FloatsWithin are typed fast paths for float slices.
package compare
