package create_booking

import (
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/types"
)

// Request carries the client's booking form.
type Request struct {
	UserID        string
	BarberID      string
	Service       domain.Service
	Type          domain.BookingType
	ScheduledDate *time.Time
	ScheduledTime types.TimeString
	ServiceType   domain.ServiceType
	ClientAddress *string
	Phone         string
	Notes         *string
	TotalPrice    int64
}

// ValidationResult is the field-keyed outcome of form validation. Keys are
// the form field names, values are user-facing messages.
type ValidationResult struct {
	IsValid bool
	Errors  map[string]string
}

// Response carries the created booking plus the WhatsApp coordination
// message. When Validation.IsValid is false, Booking is nil and no call
// was made to the backend.
type Response struct {
	Validation      ValidationResult
	Booking         *domain.Booking
	WhatsAppMessage string
	WhatsAppURL     string
}
