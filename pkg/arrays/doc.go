// Package arrays provides generic helpers for searching, copying and
// converting slices.
//
// Range-taking functions use half-open [begin, end) ranges and fail with an
// error wrapping check.ErrInvalidArgument when the range does not fit the
// slice. Lookups return -1 when nothing matches.
package arrays
