package domain

import (
	"time"

	"github.com/cortate-cl/CTC-BarberService/pkg/types"
)

// TimeSlot is a discrete bookable window derived from a barber's working
// hours. Slots are generated per (barber, date) query and never persisted.
type TimeSlot struct {
	Time     types.TimeString
	DateTime time.Time
	// Available is advisory: true until the backend confirms the slot is
	// actually free at booking time.
	Available bool
}

// IsPast reports whether the slot starts at or before the given moment.
func (s *TimeSlot) IsPast(now time.Time) bool {
	return !s.DateTime.After(now)
}
