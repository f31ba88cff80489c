// Package optional provides a present-or-absent container used in place of
// nil pointers and sentinel values.
//
// An Option either holds exactly one value or holds nothing. The contained
// value cannot be reached without acknowledging that it may be absent:
// Get returns a comma-ok pair, UnwrapOr supplies a default, and Unwrap
// panics on absence (reserved for cases the caller has already checked).
//
// At replaces panic-on-out-of-range indexing with absence:
//
//	fruits := []string{"apple", "banana", "cherry", "date", "elderberry"}
//
//	if fruit, ok := optional.At(fruits, 1).Get(); ok {
//	    fmt.Println("the second fruit is", fruit)
//	}
//
//	optional.At(fruits, 20).IsNone() // true, no panic
package optional
