package create_booking

import "errors"

var (
	// ErrBarberNotFound is returned when the requested barber does not exist.
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrSlotTaken is returned when the backend rejects the slot as already booked.
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrInternal is returned for internal use case failures.
	ErrInternal = errors.New("create_booking: internal error")
)
