package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyHoursForDate(t *testing.T) {
	hours := WeeklyHours{
		// 0 = Sunday, 3 = Wednesday.
		3: {IsOpen: true, Start: "09:00", End: "18:00"},
		0: {IsOpen: false},
	}

	wednesday := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	day := hours.ForDate(wednesday)
	assert.True(t, day.IsOpen)
	assert.Equal(t, "09:00", day.Start.String())

	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	assert.False(t, hours.ForDate(sunday).IsOpen)

	// Missing weekday counts as closed.
	thursday := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	assert.False(t, hours.ForDate(thursday).IsOpen)

	var none WeeklyHours
	assert.False(t, none.ForDate(wednesday).IsOpen)
}
