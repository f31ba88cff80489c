package optional

import "fmt"

// Option represents an optional value: either exactly one value of type T,
// or nothing. The zero Option is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the contained value. Panics if empty; callers are expected
// to have checked presence first.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("optional: called Unwrap on None")
	}
	return o.value
}

// UnwrapOr returns the contained value or the provided default.
func (o Option[T]) UnwrapOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// String returns "Some(v)" or "None".
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies a function to the contained value if present.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return Some(f(o.value))
	}
	return None[U]()
}

// At returns the element of s at index i, or None when i is out of bounds.
// Any i, including negative, is acceptable; absence is the designed signal
// for out-of-range access.
func At[T any](s []T, i int) Option[T] {
	if i < 0 || i >= len(s) {
		return None[T]()
	}
	return Some(s[i])
}

// First returns the first element of s, or None when s is empty.
func First[T any](s []T) Option[T] {
	return At(s, 0)
}

// Last returns the last element of s, or None when s is empty.
func Last[T any](s []T) Option[T] {
	return At(s, len(s)-1)
}
