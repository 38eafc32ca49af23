package domain

import (
	"time"

	"github.com/cortate-cl/CTC-BarberService/pkg/types"
)

// DayHours is the working-hours entry for a single weekday.
type DayHours struct {
	IsOpen bool
	Start  types.TimeString
	End    types.TimeString
}

// WeeklyHours maps weekdays (0 = Sunday .. 6 = Saturday, as the backend
// stores them) to working hours. Missing days count as closed.
type WeeklyHours map[int]DayHours

// ForDate returns the working hours for the weekday of the given date.
func (w WeeklyHours) ForDate(date time.Time) DayHours {
	if w == nil {
		return DayHours{IsOpen: false}
	}
	hours, ok := w[int(date.Weekday())]
	if !ok {
		return DayHours{IsOpen: false}
	}
	return hours
}
