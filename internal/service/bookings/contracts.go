package bookings

import (
	"context"
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
)

// RegistryClient is the platform backend client interface.
type RegistryClient interface {
	GetBookingByID(ctx context.Context, userID, bookingID string) (*registry.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]*registry.Booking, error)
	GetBarberBookings(ctx context.Context, userID string) ([]*registry.Booking, error)
	ConfirmBooking(ctx context.Context, userID, bookingID string) (*registry.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID, reason string) (*registry.Booking, error)
	CompleteBooking(ctx context.Context, userID, bookingID string, completion *registry.CompletionPayload) (*registry.Booking, error)
	MarkNoShow(ctx context.Context, userID, bookingID string) (*registry.Booking, error)
}

// Cache holds short-lived copies of booking lists.
type Cache interface {
	Get(key cache.Key) (interface{}, bool)
	Set(key cache.Key, value interface{})
	Invalidate(kind cache.Kind)
}

// Metrics counts cache effectiveness.
type Metrics interface {
	IncCacheHit(kind string)
	IncCacheMiss(kind string)
}

// TimeProvider supplies the current time (injectable for testing).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
