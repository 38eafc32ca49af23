package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/types"
)

func openDay(start, end string) domain.DayHours {
	return domain.DayHours{
		IsOpen: true,
		Start:  types.TimeString(start),
		End:    types.TimeString(end),
	}
}

func slotTimes(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time.String())
	}
	return out
}

var (
	date    = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	longAgo = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
)

func TestGenerateTimeSlotsFullDay(t *testing.T) {
	slots := generateTimeSlots(openDay("09:00", "12:00"), date, longAgo)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slotTimes(slots))
}

func TestGenerateTimeSlotsHalfOpenRange(t *testing.T) {
	// [09:00, 09:30) yields exactly one slot: the end bound is exclusive.
	slots := generateTimeSlots(openDay("09:00", "09:30"), date, longAgo)

	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].Time.String())
}

func TestGenerateTimeSlotsClosedDay(t *testing.T) {
	slots := generateTimeSlots(domain.DayHours{IsOpen: false}, date, longAgo)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlotsMalformedRange(t *testing.T) {
	// end <= start degrades to no availability.
	assert.Empty(t, generateTimeSlots(openDay("18:00", "09:00"), date, longAgo))
	assert.Empty(t, generateTimeSlots(openDay("09:00", "09:00"), date, longAgo))
}

func TestGenerateTimeSlotsSuppressesPast(t *testing.T) {
	// At 14:10 the 14:00 slot is already in the past.
	now := time.Date(2025, 10, 15, 14, 10, 0, 0, time.UTC)

	slots := generateTimeSlots(openDay("09:00", "16:00"), date, now)

	assert.Equal(t, []string{"14:30", "15:00", "15:30"}, slotTimes(slots))
}

func TestGenerateTimeSlotsAllPast(t *testing.T) {
	now := time.Date(2025, 10, 15, 20, 0, 0, 0, time.UTC)

	slots := generateTimeSlots(openDay("09:00", "18:00"), date, now)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlotsExactBoundaryNotOffered(t *testing.T) {
	// A slot starting exactly now is not strictly future.
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)

	slots := generateTimeSlots(openDay("14:00", "15:00"), date, now)
	assert.Equal(t, []string{"14:30"}, slotTimes(slots))
}
