package check

import (
	"reflect"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is wrapped by every error returned from this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Argument returns an ErrInvalidArgument carrying the formatted message when
// ok is false, and nil otherwise.
//
// Example:
//
//	if err := check.Argument(epsilon >= 0, "epsilon must not be negative: %v", epsilon); err != nil {
//		return err
//	}
func Argument(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}

	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// NotNil fails when v is nil. Typed nils (a nil pointer, slice, map, func,
// channel or interface stored in v) are treated as nil as well.
func NotNil(v any, name string) error {
	if isNil(v) {
		return errors.Wrapf(ErrInvalidArgument, "%s must not be nil", name)
	}

	return nil
}

// NotEmpty fails when s has no elements.
func NotEmpty[T any](s []T, name string) error {
	if len(s) == 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s must not be empty", name)
	}

	return nil
}

// Index ensures 0 <= i < length.
func Index(i, length int) error {
	if i < 0 || i >= length {
		return errors.Wrapf(ErrInvalidArgument, "index %d out of range [0, %d)", i, length)
	}

	return nil
}

// Range ensures 0 <= begin <= end <= length, the precondition of every
// half-open range operation in this module.
func Range(begin, end, length int) error {
	switch {
	case begin < 0:
		return errors.Wrapf(ErrInvalidArgument, "begin %d is negative", begin)
	case begin > end:
		return errors.Wrapf(ErrInvalidArgument, "begin %d is greater than end %d", begin, end)
	case end > length:
		return errors.Wrapf(ErrInvalidArgument, "end %d exceeds length %d", end, length)
	}

	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}

	return false
}
