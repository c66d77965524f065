package arrays

import (
	"slices"

	"github.com/pseudomuto/primitive/pkg/check"
	"github.com/pseudomuto/primitive/pkg/utils"
)

// Number is satisfied by every integer and floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// IndexOf returns the index of the first v in s at or after from, or -1.
// A negative from is treated as 0.
func IndexOf[T comparable](s []T, v T, from int) int {
	for i := max(from, 0); i < len(s); i++ {
		if s[i] == v {
			return i
		}
	}

	return -1
}

// LastIndexOf returns the index of the last v in s at or before from, or -1.
// A from past the end of s searches the whole slice.
func LastIndexOf[T comparable](s []T, v T, from int) int {
	for i := min(from, len(s)-1); i >= 0; i-- {
		if s[i] == v {
			return i
		}
	}

	return -1
}

// Contains reports whether v is in s.
func Contains[T comparable](s []T, v T) bool {
	return IndexOf(s, v, 0) != -1
}

// Sub returns a copy of s[begin:end]. The copy never shares memory with s.
func Sub[T any](s []T, begin, end int) ([]T, error) {
	if err := check.Range(begin, end, len(s)); err != nil {
		return nil, err
	}

	out := make([]T, end-begin)
	copy(out, s[begin:end])
	return out, nil
}

// Reverse reverses s[begin:end] in place.
func Reverse[T any](s []T, begin, end int) error {
	if err := check.Range(begin, end, len(s)); err != nil {
		return err
	}

	slices.Reverse(s[begin:end])
	return nil
}

// Concat returns a new slice holding the elements of every part in order, or
// nil when the parts hold no elements.
func Concat[T any](parts ...[]T) []T {
	return slices.Concat(parts...)
}

// Convert converts every element of s to To with Go's numeric conversion
// rules, e.g. widening []int32 to []int64 or truncating []float64 to []int.
func Convert[To, From Number](s []From) []To {
	if s == nil {
		return nil
	}

	out := make([]To, len(s))
	for i, v := range s {
		out[i] = To(v)
	}

	return out
}

// Box returns a slice of pointers to copies of the elements of s.
func Box[T any](s []T) []*T {
	if s == nil {
		return nil
	}

	out := make([]*T, len(s))
	for i, v := range s {
		out[i] = utils.Ptr(v)
	}

	return out
}

// Unbox dereferences every element of s, substituting fallback for nil.
func Unbox[T any](s []*T, fallback T) []T {
	if s == nil {
		return nil
	}

	out := make([]T, len(s))
	for i, p := range s {
		out[i] = utils.Deref(p, fallback)
	}

	return out
}
