package domain

import (
	"time"

	"github.com/cortate-cl/CTC-BarberService/pkg/types"
)

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no-show"
)

// BookingType distinguishes scheduled bookings from "as soon as possible" ones.
type BookingType string

const (
	BookingScheduled BookingType = "scheduled"
	BookingImmediate BookingType = "immediate"
)

// Booking is the only entity in this service with a true lifecycle. It is
// created by client-side submission after validation and afterwards mutated
// only through explicit lifecycle operations; date, time and service are
// immutable once created (changes require cancel + recreate).
type Booking struct {
	ID       string
	BarberID string
	ClientID string

	Service Service
	Type    BookingType

	// ScheduledDate and ScheduledTime are required iff Type is scheduled.
	// For immediate bookings the backend stamps the effective time itself.
	ScheduledDate *time.Time
	ScheduledTime types.TimeString

	ServiceType   ServiceType
	ClientAddress *string
	Phone         string
	Notes         *string

	TotalPrice int64
	Status     BookingStatus

	// Denormalized barber data for display and messaging.
	BarberName    string
	BarberAddress string
	BarberPhone   string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking has not reached a terminal state.
func (b *Booking) IsActive() bool {
	return !b.Status.IsTerminal()
}

// CanBeCancelled returns true if a cancel transition is legal from the
// booking's current status.
func (b *Booking) CanBeCancelled() bool {
	_, ok := NextStatus(b.Status, EventCancel)
	return ok
}

// EffectiveTime is the moment the booking takes effect: the scheduled
// date/time for scheduled bookings, the creation time for immediate ones.
func (b *Booking) EffectiveTime() time.Time {
	if b.Type == BookingScheduled && b.ScheduledDate != nil {
		if b.ScheduledTime != "" {
			if at, err := b.ScheduledTime.At(*b.ScheduledDate); err == nil {
				return at
			}
		}
		return *b.ScheduledDate
	}
	return b.CreatedAt
}

// CancellationNotice returns how far before the effective time a booking
// must be cancelled to avoid a penalty.
func (b *Booking) CancellationNotice() time.Duration {
	if b.Type == BookingImmediate {
		return CancelNoticeImmediate
	}
	return CancelNoticeScheduled
}

// CanCancelWithoutPenalty reports whether cancelling at the given moment
// stays outside the penalty window. Bookings in a state that cannot be
// cancelled never qualify.
func (b *Booking) CanCancelWithoutPenalty(now time.Time) bool {
	if !b.CanBeCancelled() {
		return false
	}
	return b.EffectiveTime().Sub(now) > b.CancellationNotice()
}
