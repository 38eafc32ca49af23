package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/ptr"
)

var now = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)

func validScheduledRequest() *Request {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	return &Request{
		UserID:        "u1",
		BarberID:      "b1",
		Service:       domain.Service{Name: "Corte de pelo", Price: 12000},
		Type:          domain.BookingScheduled,
		ScheduledDate: &date,
		ScheduledTime: "10:00",
		ServiceType:   domain.ServiceInShop,
		TotalPrice:    12000,
	}
}

func TestValidateValidScheduled(t *testing.T) {
	result := validateRequest(validScheduledRequest(), now)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateImmediateNeedsNoDate(t *testing.T) {
	req := validScheduledRequest()
	req.Type = domain.BookingImmediate
	req.ScheduledDate = nil
	req.ScheduledTime = ""

	result := validateRequest(req, now)
	assert.True(t, result.IsValid)
}

func TestValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		field   string
		message string
	}{
		{
			name:    "missing barber",
			mutate:  func(r *Request) { r.BarberID = "  " },
			field:   "barberId",
			message: "Debes seleccionar un barbero",
		},
		{
			name:    "missing service",
			mutate:  func(r *Request) { r.Service = domain.Service{} },
			field:   "service",
			message: "Debes seleccionar un servicio válido",
		},
		{
			name:    "invalid type",
			mutate:  func(r *Request) { r.Type = "walk_in" },
			field:   "type",
			message: "Tipo de reserva inválido",
		},
		{
			name:    "missing date",
			mutate:  func(r *Request) { r.ScheduledDate = nil },
			field:   "scheduledDate",
			message: "Debes seleccionar una fecha",
		},
		{
			name:    "missing time",
			mutate:  func(r *Request) { r.ScheduledTime = "" },
			field:   "scheduledTime",
			message: "Debes seleccionar una hora",
		},
		{
			name: "past date",
			mutate: func(r *Request) {
				past := now.Add(-48 * time.Hour)
				r.ScheduledDate = &past
			},
			field:   "scheduledDate",
			message: "La fecha debe ser futura",
		},
		{
			name: "home service needs address",
			mutate: func(r *Request) {
				r.ServiceType = domain.ServiceHome
				r.ClientAddress = nil
			},
			field:   "clientAddress",
			message: "Debes proporcionar tu dirección",
		},
		{
			name: "blank address rejected",
			mutate: func(r *Request) {
				r.ServiceType = domain.ServiceBoth
				r.ClientAddress = ptr.Ptr("   ")
			},
			field:   "clientAddress",
			message: "Debes proporcionar tu dirección",
		},
		{
			name:    "invalid price",
			mutate:  func(r *Request) { r.TotalPrice = 0 },
			field:   "totalPrice",
			message: "Precio inválido",
		},
		{
			name: "notes too long",
			mutate: func(r *Request) {
				r.Notes = ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength+1))
			},
			field:   "notes",
			message: "Las notas son demasiado largas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validScheduledRequest()
			tt.mutate(req)

			result := validateRequest(req, now)
			require.False(t, result.IsValid)
			assert.Equal(t, tt.message, result.Errors[tt.field])
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	req := &Request{Type: domain.BookingScheduled}

	result := validateRequest(req, now)
	require.False(t, result.IsValid)

	// Every broken field is reported at once.
	for _, field := range []string{"barberId", "service", "scheduledDate", "scheduledTime", "totalPrice"} {
		assert.Contains(t, result.Errors, field)
	}
}

func TestValidateTodayLaterTimeIsFuture(t *testing.T) {
	req := validScheduledRequest()
	today := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	req.ScheduledDate = &today
	req.ScheduledTime = "18:00" // now is 12:00

	result := validateRequest(req, now)
	assert.True(t, result.IsValid)

	req.ScheduledTime = "09:00" // already past
	result = validateRequest(req, now)
	require.False(t, result.IsValid)
	assert.Equal(t, "La fecha debe ser futura", result.Errors["scheduledDate"])
}
