package create_booking

import (
	"strings"
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
)

// User-facing validation messages, keyed by form field.
const (
	msgBarberRequired  = "Debes seleccionar un barbero"
	msgServiceRequired = "Debes seleccionar un servicio válido"
	msgTypeInvalid     = "Tipo de reserva inválido"
	msgDateRequired    = "Debes seleccionar una fecha"
	msgDateInPast      = "La fecha debe ser futura"
	msgTimeRequired    = "Debes seleccionar una hora"
	msgAddressRequired = "Debes proporcionar tu dirección"
	msgPriceInvalid    = "Precio inválido"
	msgNotesTooLong    = "Las notas son demasiado largas"
)

// validateRequest checks the booking form and accumulates every problem
// instead of stopping at the first, so the caller can surface all of them
// at once.
func validateRequest(req *Request, now time.Time) ValidationResult {
	errs := make(map[string]string)

	if strings.TrimSpace(req.BarberID) == "" {
		errs["barberId"] = msgBarberRequired
	}

	if strings.TrimSpace(req.Service.Name) == "" || req.Service.Price <= 0 {
		errs["service"] = msgServiceRequired
	}

	switch req.Type {
	case domain.BookingScheduled:
		if req.ScheduledDate == nil {
			errs["scheduledDate"] = msgDateRequired
		}
		if req.ScheduledTime == "" {
			errs["scheduledTime"] = msgTimeRequired
		}
		if req.ScheduledDate != nil && req.ScheduledTime != "" {
			at, err := req.ScheduledTime.At(*req.ScheduledDate)
			if err != nil {
				errs["scheduledTime"] = msgTimeRequired
			} else if !at.After(now) {
				errs["scheduledDate"] = msgDateInPast
			}
		}
	case domain.BookingImmediate:
		// No date or time is needed, the booking starts as soon as possible.
	default:
		errs["type"] = msgTypeInvalid
	}

	if req.ServiceType == domain.ServiceHome || req.ServiceType == domain.ServiceBoth {
		if req.ClientAddress == nil || strings.TrimSpace(*req.ClientAddress) == "" {
			errs["clientAddress"] = msgAddressRequired
		}
	}

	if req.TotalPrice <= 0 {
		errs["totalPrice"] = msgPriceInvalid
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		errs["notes"] = msgNotesTooLong
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
