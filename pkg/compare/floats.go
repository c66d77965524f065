package compare

import (
	"math"
	"unsafe"
)

// Float is satisfied by every floating-point type.
type Float interface {
	~float32 | ~float64
}

// Floats reports whether a and b hold the same floats bit for bit. It is the
// typed, reflection-free counterpart of Equal for float slices.
func Floats[F Float](a, b []F) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}

	for i := range a {
		if bits(a[i]) != bits(b[i]) {
			return false
		}
	}

	return true
}

// FloatsWithin reports whether a and b hold pairwise floats that differ by at
// most epsilon, with NaN only matching NaN. It is the typed counterpart of
// ValueEqual for float slices.
func FloatsWithin[F Float](a, b []F, epsilon float64) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}

	for i := range a {
		if !within(float64(a[i]), float64(b[i]), epsilon) {
			return false
		}
	}

	return true
}

func bits[F Float](f F) uint64 {
	if unsafe.Sizeof(f) == 4 {
		return uint64(*(*uint32)(unsafe.Pointer(&f)))
	}

	return math.Float64bits(*(*float64)(unsafe.Pointer(&f)))
}
