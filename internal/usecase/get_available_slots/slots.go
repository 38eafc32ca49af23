package get_available_slots

import (
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/types"
)

// generateTimeSlots emits one provisional slot every SlotIntervalMinutes
// within the half-open range [start, end) of the day's working hours,
// anchored on date. Slots at or before now are suppressed, so nothing in
// the past is ever offered. A closed day, or hours with end <= start,
// yields no slots.
func generateTimeSlots(hours domain.DayHours, date time.Time, now time.Time) []domain.TimeSlot {
	if !hours.IsOpen {
		return []domain.TimeSlot{}
	}

	startMin, err := hours.Start.Minutes()
	if err != nil {
		return []domain.TimeSlot{}
	}
	endMin, err := hours.End.Minutes()
	if err != nil {
		return []domain.TimeSlot{}
	}
	if endMin <= startMin {
		// Malformed configuration degrades to "no availability".
		return []domain.TimeSlot{}
	}

	slots := make([]domain.TimeSlot, 0, (endMin-startMin)/domain.SlotIntervalMinutes)

	for cur := startMin; cur < endMin; cur += domain.SlotIntervalMinutes {
		at := time.Date(date.Year(), date.Month(), date.Day(), cur/60, cur%60, 0, 0, date.Location())
		if !at.After(now) {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Time:      types.NewTimeString(at),
			DateTime:  at,
			Available: true,
		})
	}

	return slots
}
