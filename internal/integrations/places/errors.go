package places

import "errors"

var (
	// ErrInternal is returned for client-side failures (request building, transport).
	ErrInternal = errors.New("places client: internal error")

	// ErrInvalidResponse is returned when the lookup answers with an
	// unexpected status or an unparseable body.
	ErrInvalidResponse = errors.New("places client: invalid response")
)
