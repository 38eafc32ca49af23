package get_available_slots

import "errors"

var (
	// ErrBarberNotFound is returned when the barber does not exist in the
	// registry (external listings have no bookable schedule).
	ErrBarberNotFound = errors.New("get_available_slots: barber not found")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for internal use case failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
