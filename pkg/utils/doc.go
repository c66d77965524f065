// Package utils provides small scalar helpers shared by the primitive packages
// and the CLI.
//
// # Boxing
//
// Ptr boxes a value and Deref unboxes it with a fallback for nil:
//
//	limit := utils.Ptr(10)
//	n := utils.Deref(limit, 0) // 10
//	m := utils.Deref[int](nil, 5) // 5
//
// # Value classification
//
// IsIntegerValue and IsNumericValue classify strings before they are parsed,
// which lets the CLI pick the element type of a search key:
//
//	utils.IsIntegerValue("42")   // true
//	utils.IsIntegerValue("4.5")  // false
//	utils.IsNumericValue("4.5")  // true
//	utils.IsNumericValue("four") // false
package utils
