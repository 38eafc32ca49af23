package barbers

import "errors"

var (
	// ErrBarberNotFound is returned when the barber does not exist.
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures.
	ErrInternal = errors.New("service: internal error")
)
