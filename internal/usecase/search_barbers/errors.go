package search_barbers

import "errors"

var (
	// ErrAllSourcesFailed is returned when both the registry and the places
	// lookup fail; a single failing source only degrades the result.
	ErrAllSourcesFailed = errors.New("search_barbers: all directory sources failed")

	// ErrInvalidInput is returned for malformed search parameters.
	ErrInvalidInput = errors.New("search_barbers: invalid input data")
)
