package domain

import (
	"time"

	"github.com/cortate-cl/CTC-BarberService/pkg/geo"
)

// Slot generation
const (
	// SlotIntervalMinutes is the fixed step between bookable slots.
	SlotIntervalMinutes = 30
)

// Cancellation policy: cancelling closer to the effective time than the
// notice window flags the booking for downstream penalty handling.
const (
	CancelNoticeImmediate = 10 * time.Minute
	CancelNoticeScheduled = 30 * time.Minute
)

// Directory search
const (
	DefaultSearchRadiusKm = 10
	MaxSearchRadiusKm     = 20
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultLocation is the fallback viewer location (Santiago, Chile) used
// when the client provides no coordinates.
var DefaultLocation = geo.Point{Lat: -33.4489, Lng: -70.6693}

// StatusLabels maps booking statuses to their Spanish display text.
var StatusLabels = map[BookingStatus]string{
	StatusPending:    "Pendiente",
	StatusConfirmed:  "Confirmada",
	StatusInProgress: "En progreso",
	StatusCompleted:  "Completada",
	StatusCancelled:  "Cancelada",
	StatusNoShow:     "No asistió",
}

// StatusColors maps booking statuses to the UI hex colors.
var StatusColors = map[BookingStatus]string{
	StatusPending:    "#f59e0b",
	StatusConfirmed:  "#10b981",
	StatusInProgress: "#3b82f6",
	StatusCompleted:  "#6b7280",
	StatusCancelled:  "#ef4444",
	StatusNoShow:     "#dc2626",
}

// StatusLabel returns the Spanish display text for a status, falling back
// to the raw value.
func StatusLabel(s BookingStatus) string {
	if label, ok := StatusLabels[s]; ok {
		return label
	}
	return string(s)
}
