package registry

import "errors"

var (
	// ErrBarberNotFound is returned when the registry knows no barber with the given ID.
	ErrBarberNotFound = errors.New("barber not found")

	// ErrBookingNotFound is returned when the registry knows no booking with the given ID.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotTaken is returned when the backend rejects a booking because the
	// slot was taken between slot generation and submission.
	ErrSlotTaken = errors.New("slot is no longer available")

	// ErrUpstream is returned for rejections the backend explains itself; the
	// wrapped message is the server's own and is safe to surface.
	ErrUpstream = errors.New("registry rejected request")

	// ErrInternal is returned for client-side failures (request building, transport).
	ErrInternal = errors.New("registry client: internal error")

	// ErrInvalidResponse is returned when the registry answers with an
	// unexpected status or an unparseable body.
	ErrInvalidResponse = errors.New("registry client: invalid response")
)
