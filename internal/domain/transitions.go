package domain

// BookingEvent is a lifecycle operation applied to a booking.
type BookingEvent string

const (
	EventConfirm  BookingEvent = "confirm"
	EventStart    BookingEvent = "start"
	EventComplete BookingEvent = "complete"
	EventCancel   BookingEvent = "cancel"
	EventNoShow   BookingEvent = "no_show"
)

type transitionKey struct {
	from  BookingStatus
	event BookingEvent
}

// transitions is the single source of truth for booking status changes.
// Legality checks everywhere in the service go through NextStatus instead
// of re-deriving rules at call sites.
var transitions = map[transitionKey]BookingStatus{
	{StatusPending, EventConfirm}:    StatusConfirmed,
	{StatusPending, EventCancel}:     StatusCancelled,
	{StatusConfirmed, EventStart}:    StatusInProgress,
	{StatusConfirmed, EventComplete}: StatusCompleted,
	{StatusConfirmed, EventCancel}:   StatusCancelled,
	{StatusConfirmed, EventNoShow}:   StatusNoShow,
	{StatusInProgress, EventComplete}: StatusCompleted,
}

// NextStatus returns the status a booking moves to when event is applied
// from the given status, and whether the transition is legal.
func NextStatus(from BookingStatus, event BookingEvent) (BookingStatus, bool) {
	to, ok := transitions[transitionKey{from: from, event: event}]
	return to, ok
}

// IsTerminal reports whether no event can move a booking out of s.
func (s BookingStatus) IsTerminal() bool {
	for key := range transitions {
		if key.from == s {
			return false
		}
	}
	return true
}

// ValidStatuses lists every status a booking may carry.
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// ParseBookingStatus validates a raw status string.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, valid := range ValidStatuses {
		if BookingStatus(s) == valid {
			return valid, true
		}
	}
	return "", false
}
