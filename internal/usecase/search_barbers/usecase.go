package search_barbers

import (
	"context"
	"fmt"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
)

// UseCase merges the two barber sources into one deduplicated directory
// and narrows it with the request's filters and sort key. The merged
// directory is cached per (location, radius); filtering and sorting run
// per request on top of the cached result.
type UseCase struct {
	registryClient RegistryClient
	placesClient   PlacesClient
	cache          Cache
	metrics        Metrics
	logger         Logger
}

// NewUseCase creates a new instance of the use case.
func NewUseCase(
	registryClient RegistryClient,
	placesClient PlacesClient,
	directoryCache Cache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		registryClient: registryClient,
		placesClient:   placesClient,
		cache:          directoryCache,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute runs the directory search.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Normalize and validate input
	normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchBarbers: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SearchBarbers: lat=%.4f, lng=%.4f, radius=%.1f, sort=%s",
		req.Location.Lat, req.Location.Lng, req.RadiusKm, req.SortBy)

	// 2. Fetch or reuse the merged directory for this viewpoint
	result, degraded, err := uc.combinedDirectory(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Narrow for display; the cached slice is never mutated
	listings := applyFilters(result.listings, req.Filters)
	listings = sortListings(listings, req.SortBy)

	uc.logger.Info("SearchBarbers: %d of %d listings after filters (registered=%d, external=%d)",
		len(listings), result.stats.Total, result.stats.Registered, result.stats.External)

	return &Response{
		Listings: listings,
		Stats:    result.stats,
		Degraded: degraded,
	}, nil
}

// combinedDirectory returns the reconciled listing set for the request's
// location and radius, consulting the cache first. Degraded (single-source)
// results are returned but not cached, so the next query retries the
// failed source.
func (uc *UseCase) combinedDirectory(ctx context.Context, req *Request) (*directoryResult, bool, error) {
	key := cache.Key{
		Kind:   cache.KindDirectory,
		Params: fmt.Sprintf("%.4f:%.4f:%.1f", req.Location.Lat, req.Location.Lng, req.RadiusKm),
	}

	if cached, ok := uc.cache.Get(key); ok {
		if result, ok := cached.(*directoryResult); ok {
			uc.metrics.IncCacheHit(string(cache.KindDirectory))
			return result, false, nil
		}
	}
	uc.metrics.IncCacheMiss(string(cache.KindDirectory))

	// Both sources are fetched sequentially; a failing source degrades the
	// result instead of failing the query.
	var combined []*domain.BarberListing
	registeredCount := 0
	degraded := false

	registered, err := uc.registryClient.GetNearby(ctx, req.Location.Lat, req.Location.Lng, req.RadiusKm)
	if err != nil {
		uc.logger.Error("SearchBarbers: registry source failed: %v", err)
		degraded = true
	} else {
		for _, barber := range registered {
			combined = append(combined, barber.ToDomain())
		}
		registeredCount = len(combined)
	}

	externalCount := 0
	external, err := uc.placesClient.GetBarberShops(ctx, req.Location.Lat, req.Location.Lng, req.RadiusKm)
	if err != nil {
		uc.logger.Error("SearchBarbers: places source failed: %v", err)
		if degraded {
			// Both sources down: empty list with an explicit error signal.
			return nil, false, ErrAllSourcesFailed
		}
		degraded = true
	} else {
		externalListings := make([]*domain.BarberListing, 0, len(external))
		for _, place := range external {
			externalListings = append(externalListings, place.ToDomain())
		}
		before := len(combined)
		combined = reconcile(combined, externalListings)
		externalCount = len(combined) - before
	}

	combined = withDistances(combined, req.Location)

	result := &directoryResult{
		listings: combined,
		stats: SourceStats{
			Registered: registeredCount,
			External:   externalCount,
			Total:      len(combined),
		},
	}

	if !degraded {
		uc.cache.Set(key, result)
	}

	return result, degraded, nil
}
