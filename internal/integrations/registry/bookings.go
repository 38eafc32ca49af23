package registry

import (
	"context"
	"net/http"
)

// CreateBooking submits a validated booking request and returns the
// persisted booking with its backend-assigned ID.
func (c *Client) CreateBooking(ctx context.Context, userID string, payload *CreateBookingPayload) (*Booking, error) {
	var booking Booking
	if err := c.call(ctx, http.MethodPost, "/bookings", userID, payload, &booking); err != nil {
		return nil, mapAPIError(err, ErrBarberNotFound)
	}

	c.log.Info("CreateBooking: created booking id=%s barber=%s", booking.ID, booking.BarberID)
	return &booking, nil
}

// GetBookingByID fetches a single booking.
func (c *Client) GetBookingByID(ctx context.Context, userID, bookingID string) (*Booking, error) {
	var booking Booking
	if err := c.call(ctx, http.MethodGet, "/bookings/"+bookingID, userID, nil, &booking); err != nil {
		return nil, mapAPIError(err, ErrBookingNotFound)
	}

	return &booking, nil
}

// GetUserBookings fetches the calling client's bookings.
func (c *Client) GetUserBookings(ctx context.Context, userID string) ([]*Booking, error) {
	var bookings []*Booking
	if err := c.call(ctx, http.MethodGet, "/bookings/me", userID, nil, &bookings); err != nil {
		return nil, mapAPIError(err, ErrBookingNotFound)
	}

	return bookings, nil
}

// GetBarberBookings fetches the calling barber's bookings.
func (c *Client) GetBarberBookings(ctx context.Context, userID string) ([]*Booking, error) {
	var bookings []*Booking
	if err := c.call(ctx, http.MethodGet, "/bookings/barber/me", userID, nil, &bookings); err != nil {
		return nil, mapAPIError(err, ErrBookingNotFound)
	}

	return bookings, nil
}

// ConfirmBooking accepts a pending booking (barber action).
func (c *Client) ConfirmBooking(ctx context.Context, userID, bookingID string) (*Booking, error) {
	var booking Booking
	if err := c.call(ctx, http.MethodPut, "/bookings/"+bookingID+"/accept", userID, nil, &booking); err != nil {
		return nil, mapAPIError(err, ErrBookingNotFound)
	}

	return &booking, nil
}

// CancelBooking cancels a booking with an optional reason.
func (c *Client) CancelBooking(ctx context.Context, userID, bookingID, reason string) (*Booking, error) {
	var body interface{}
	if reason != "" {
		body = map[string]string{"reason": reason}
	}

	var booking Booking
	if err := c.call(ctx, http.MethodPut, "/bookings/"+bookingID+"/cancel", userID, body, &booking); err != nil {
		return nil, mapAPIError(err, ErrBookingNotFound)
	}

	return &booking, nil
}

// CompleteBooking marks a booking as completed (barber action).
func (c *Client) CompleteBooking(ctx context.Context, userID, bookingID string, completion *CompletionPayload) (*Booking, error) {
	var booking Booking
	if err := c.call(ctx, http.MethodPut, "/bookings/"+bookingID+"/complete", userID, completion, &booking); err != nil {
		return nil, mapAPIError(err, ErrBookingNotFound)
	}

	return &booking, nil
}

// MarkNoShow marks a confirmed booking as a no-show (barber action).
func (c *Client) MarkNoShow(ctx context.Context, userID, bookingID string) (*Booking, error) {
	var booking Booking
	if err := c.call(ctx, http.MethodPut, "/bookings/"+bookingID+"/no-show", userID, nil, &booking); err != nil {
		return nil, mapAPIError(err, ErrBookingNotFound)
	}

	return &booking, nil
}
