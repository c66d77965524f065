package utils

import (
	"strconv"
	"strings"
)

// IsNumericValue checks if a string represents a valid numeric value.
// This uses strconv.ParseFloat to properly validate numeric formats,
// including integers, floats, and scientific notation.
//
// Examples:
//   - "123" -> true
//   - "-123.45" -> true
//   - "1.23e-4" -> true
//   - "NaN" -> true
//   - "abc" -> false
//   - "1.2.3" -> false
//   - "" -> false
func IsNumericValue(value string) bool {
	if value == "" {
		return false
	}

	_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil
}

// IsIntegerValue checks if a string holds a base 10 integer that fits in an
// int64.
//
// Examples:
//   - "42" -> true
//   - "-7" -> true
//   - "4.0" -> false
//   - "1e3" -> false
//   - "" -> false
func IsIntegerValue(value string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	return err == nil
}
