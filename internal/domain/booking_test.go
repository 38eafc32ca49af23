package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cortate-cl/CTC-BarberService/pkg/types"
)

func scheduledBooking(status BookingStatus, at time.Time) *Booking {
	date := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	return &Booking{
		Type:          BookingScheduled,
		Status:        status,
		ScheduledDate: &date,
		ScheduledTime: types.NewTimeString(at),
	}
}

func TestEffectiveTime(t *testing.T) {
	at := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

	t.Run("scheduled uses date plus time", func(t *testing.T) {
		b := scheduledBooking(StatusConfirmed, at)
		assert.Equal(t, at, b.EffectiveTime())
	})

	t.Run("immediate uses creation time", func(t *testing.T) {
		created := time.Date(2025, 10, 15, 9, 12, 0, 0, time.UTC)
		b := &Booking{Type: BookingImmediate, CreatedAt: created}
		assert.Equal(t, created, b.EffectiveTime())
	})

	t.Run("scheduled without time falls back to date", func(t *testing.T) {
		date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
		b := &Booking{Type: BookingScheduled, ScheduledDate: &date}
		assert.Equal(t, date, b.EffectiveTime())
	})
}

func TestCanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusInProgress}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestCanCancelWithoutPenalty(t *testing.T) {
	at := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)

	t.Run("scheduled outside notice window", func(t *testing.T) {
		b := scheduledBooking(StatusConfirmed, at)
		now := at.Add(-40 * time.Minute)
		assert.True(t, b.CanCancelWithoutPenalty(now))
	})

	t.Run("scheduled inside notice window", func(t *testing.T) {
		b := scheduledBooking(StatusConfirmed, at)
		now := at.Add(-20 * time.Minute)
		assert.False(t, b.CanCancelWithoutPenalty(now))
	})

	t.Run("scheduled exactly at the boundary is penalized", func(t *testing.T) {
		b := scheduledBooking(StatusConfirmed, at)
		now := at.Add(-CancelNoticeScheduled)
		assert.False(t, b.CanCancelWithoutPenalty(now))
	})

	t.Run("immediate outside notice window", func(t *testing.T) {
		b := &Booking{Type: BookingImmediate, Status: StatusPending, CreatedAt: at}
		now := at.Add(-15 * time.Minute)
		assert.True(t, b.CanCancelWithoutPenalty(now))
	})

	t.Run("immediate inside notice window", func(t *testing.T) {
		b := &Booking{Type: BookingImmediate, Status: StatusPending, CreatedAt: at}
		now := at.Add(-5 * time.Minute)
		assert.False(t, b.CanCancelWithoutPenalty(now))
	})

	t.Run("uncancellable status never qualifies", func(t *testing.T) {
		b := scheduledBooking(StatusCompleted, at)
		now := at.Add(-2 * time.Hour)
		assert.False(t, b.CanCancelWithoutPenalty(now))
	})
}
