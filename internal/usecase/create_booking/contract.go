package create_booking

import (
	"context"
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
)

// RegistryClient is the platform backend client interface.
type RegistryClient interface {
	GetBarberByID(ctx context.Context, barberID string) (*registry.Barber, error)
	CreateBooking(ctx context.Context, userID string, payload *registry.CreateBookingPayload) (*registry.Booking, error)
}

// Cache invalidates the caller's cached booking lists after a write.
type Cache interface {
	Invalidate(kind cache.Kind)
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
