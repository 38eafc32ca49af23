package barbers

import (
	"context"

	"github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
)

// RegistryClient is the platform backend client interface.
type RegistryClient interface {
	GetBarberByID(ctx context.Context, barberID string) (*registry.Barber, error)
	UpdateAvailability(ctx context.Context, userID string, immediateBooking bool) (*registry.Barber, error)
	UpdateStatus(ctx context.Context, userID string, status string) (*registry.Barber, error)
	GetStatistics(ctx context.Context, userID string) (*registry.Statistics, error)
}

// Cache holds short-lived copies of barber profiles.
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

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
