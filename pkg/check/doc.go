// Package check provides argument validation helpers shared by the other
// primitive packages.
//
// Every failure returned by this package wraps ErrInvalidArgument, so callers
// can match contract violations regardless of which helper produced them:
//
//	if err := check.Range(begin, end, len(s)); err != nil {
//		return 0, err
//	}
//
//	if errors.Is(err, check.ErrInvalidArgument) {
//		// caller passed bad indexes
//	}
//
// These errors signal programming mistakes rather than recoverable runtime
// conditions. They are returned immediately and never retried.
package check
