package collections

import "errors"

// Sentinel errors returned by collection operations.
//
// Zip, Intersection and Difference with no arrays are not errors: they
// return an empty (or copied) result.
var (
	// ErrInvalidInput is returned when a value passed as a collection is
	// neither a sequence (slice, array, *Collection[any]) nor a string-keyed
	// map.
	ErrInvalidInput = errors.New("collections: value is not a collection")

	// ErrMethodNotFound is returned by [Invoke] when an element has no
	// exported method with the requested name.
	ErrMethodNotFound = errors.New("collections: method not found")
)
