package models

import (
	"fmt"
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
)

// View selects a subset of a booking list.
type View string

const (
	ViewAll      View = "all"
	ViewUpcoming View = "upcoming"
	ViewHistory  View = "history"
	ViewToday    View = "today"
)

// ParseView validates a view query value, defaulting to ViewAll.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case "", ViewAll:
		return ViewAll, true
	case ViewUpcoming, ViewHistory, ViewToday:
		return View(s), true
	default:
		return "", false
	}
}

// Request models

// CancelBookingRequest cancels a booking with an optional reason.
type CancelBookingRequest struct {
	UserID string
	Reason string
}

// CompleteBookingRequest closes a finished booking, optionally adjusting
// the final price.
type CompleteBookingRequest struct {
	UserID     string
	FinalPrice *int64
	Notes      *string
}

// ListBookingsRequest fetches a booking list filtered by view and status.
type ListBookingsRequest struct {
	UserID string
	View   View
	Status *string
}

// Response models

// ServiceResponse is the booked service as shown to the user.
type ServiceResponse struct {
	Name            string  `json:"name"`
	Price           int64   `json:"price"`
	FormattedPrice  string  `json:"formattedPrice"`
	DurationMinutes *int    `json:"duration,omitempty"`
	Description     *string `json:"description,omitempty"`
}

// BookingResponse is the booking DTO returned by the API.
type BookingResponse struct {
	ID       string `json:"id"`
	BarberID string `json:"barberId"`
	ClientID string `json:"clientId"`

	Service ServiceResponse `json:"service"`
	Type    string          `json:"type"`

	ScheduledDate *string `json:"scheduledDate,omitempty"` // "2025-10-15"
	ScheduledTime string  `json:"scheduledTime,omitempty"` // "10:00"

	ServiceType   string  `json:"serviceType"`
	ClientAddress *string `json:"clientAddress,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	TotalPrice     int64  `json:"totalPrice"`
	FormattedPrice string `json:"formattedPrice"`

	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	StatusColor string `json:"statusColor"`

	BarberName    string `json:"barberName,omitempty"`
	BarberAddress string `json:"barberAddress,omitempty"`
	BarberPhone   string `json:"barberPhone,omitempty"`

	// TimeUntil is a humanized countdown to the effective time, present
	// only for active future bookings.
	TimeUntil *string `json:"timeUntil,omitempty"`

	// CanCancel reports whether a cancel action should be offered.
	CanCancel bool `json:"canCancel"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // RFC3339

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// CancelBookingResponse reports the cancellation outcome. PenaltyApplies
// is true when the booking was cancelled inside the notice window.
type CancelBookingResponse struct {
	Booking        BookingResponse `json:"booking"`
	PenaltyApplies bool            `json:"penaltyApplies"`
}

// Conversion

// FromDomainBooking converts a domain booking into the API DTO. The
// current time drives the countdown text and the cancel affordance.
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:       b.ID,
		BarberID: b.BarberID,
		ClientID: b.ClientID,
		Service: ServiceResponse{
			Name:            b.Service.Name,
			Price:           b.Service.Price,
			FormattedPrice:  domain.FormatCLP(b.Service.Price),
			DurationMinutes: b.Service.DurationMinutes,
			Description:     b.Service.Description,
		},
		Type:               string(b.Type),
		ScheduledTime:      b.ScheduledTime.String(),
		ServiceType:        string(b.ServiceType),
		ClientAddress:      b.ClientAddress,
		Phone:              b.Phone,
		Notes:              b.Notes,
		TotalPrice:         b.TotalPrice,
		FormattedPrice:     domain.FormatCLP(b.TotalPrice),
		Status:             string(b.Status),
		StatusLabel:        domain.StatusLabel(b.Status),
		StatusColor:        domain.StatusColors[b.Status],
		BarberName:         b.BarberName,
		BarberAddress:      b.BarberAddress,
		BarberPhone:        b.BarberPhone,
		CanCancel:          b.CanBeCancelled(),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.ScheduledDate != nil {
		date := b.ScheduledDate.Format(domain.DateFormat)
		resp.ScheduledDate = &date
	}
	if b.CancelledAt != nil {
		at := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &at
	}

	if b.IsActive() {
		if until := b.EffectiveTime().Sub(now); until > 0 {
			text := TimeUntilText(until)
			resp.TimeUntil = &text
		}
	}

	return resp
}

// FromDomainBookingList converts a booking list into the API DTO.
func FromDomainBookingList(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if dto := FromDomainBooking(booking, now); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}

	resp.Total = len(resp.Bookings)
	return resp
}

// TimeUntilText humanizes a positive duration for display.
func TimeUntilText(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "En menos de un minuto"
	case d < time.Hour:
		m := int(d.Minutes())
		if m == 1 {
			return "En 1 minuto"
		}
		return fmt.Sprintf("En %d minutos", m)
	case d < 24*time.Hour:
		h := int(d.Hours())
		if h == 1 {
			return "En 1 hora"
		}
		return fmt.Sprintf("En %d horas", h)
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "En 1 día"
		}
		return fmt.Sprintf("En %d días", days)
	}
}
