package text

import "errors"

// Errors returned by text operations.
var (
	// ErrRangeInvalid indicates an invalid range (e.g., end < start or out of bounds).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrViewStale is returned when a view's owning text has been modified
	// since the view was taken.
	ErrViewStale = errors.New("view is stale: owning text has been modified")
)
