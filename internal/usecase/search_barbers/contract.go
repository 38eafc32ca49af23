package search_barbers

import (
	"context"

	"github.com/cortate-cl/CTC-BarberService/internal/integrations/places"
	"github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
)

// RegistryClient is the platform backend client interface.
type RegistryClient interface {
	GetNearby(ctx context.Context, lat, lng, radiusKm float64) ([]*registry.Barber, error)
}

// PlacesClient is the external places lookup client interface.
type PlacesClient interface {
	GetBarberShops(ctx context.Context, lat, lng, radiusKm float64) ([]*places.Place, error)
}

// Cache is the read-result cache interface.
type Cache interface {
	Get(key cache.Key) (interface{}, bool)
	Set(key cache.Key, value interface{})
}

// Metrics is the subset of metric collectors this use case reports to.
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
