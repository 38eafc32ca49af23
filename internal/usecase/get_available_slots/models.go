package get_available_slots

import (
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
)

// Request asks for the bookable slots of one barber on one calendar date.
type Request struct {
	BarberID string
	Date     time.Time
}

// Response is the generated slot list. Slots are advisory: the backend
// decides actual availability at booking time.
type Response struct {
	BarberID string
	Date     time.Time
	Slots    []domain.TimeSlot
}
