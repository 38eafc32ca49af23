package barbers

import (
	"context"
	"errors"
	"fmt"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
	"github.com/cortate-cl/CTC-BarberService/internal/service/barbers/models"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
)

// Service exposes barber profiles and the barber dashboard actions.
type Service struct {
	registryClient RegistryClient
	cache          Cache
	metrics        Metrics
	logger         Logger
}

// NewService creates a new barbers service.
func NewService(registryClient RegistryClient, barberCache Cache, metrics Metrics, logger Logger) *Service {
	return &Service{
		registryClient: registryClient,
		cache:          barberCache,
		metrics:        metrics,
		logger:         logger,
	}
}

// GetByID fetches a single barber profile, serving repeated lookups from
// the cache.
func (s *Service) GetByID(ctx context.Context, barberID string) (*models.BarberResponse, error) {
	if barberID == "" {
		return nil, fmt.Errorf("%w: barber ID is required", ErrInvalidInput)
	}

	key := cache.Key{Kind: cache.KindBarber, Params: barberID}
	if cached, ok := s.cache.Get(key); ok {
		if listing, ok := cached.(*domain.BarberListing); ok {
			s.metrics.IncCacheHit(string(cache.KindBarber))
			return models.FromDomainListing(listing), nil
		}
	}
	s.metrics.IncCacheMiss(string(cache.KindBarber))

	barber, err := s.registryClient.GetBarberByID(ctx, barberID)
	if err != nil {
		return nil, s.mapRegistryError("GetByID", barberID, err)
	}

	listing := barber.ToDomain()
	s.cache.Set(key, listing)

	return models.FromDomainListing(listing), nil
}

// UpdateAvailability toggles the caller's immediate-booking option.
func (s *Service) UpdateAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.BarberResponse, error) {
	barber, err := s.registryClient.UpdateAvailability(ctx, req.UserID, req.ImmediateBooking)
	if err != nil {
		return nil, s.mapRegistryError("UpdateAvailability", req.UserID, err)
	}

	s.cache.Invalidate(cache.KindBarber)
	s.logger.Info("UpdateAvailability: barber=%s immediateBooking=%t", req.UserID, req.ImmediateBooking)

	return models.FromDomainListing(barber.ToDomain()), nil
}

// UpdateStatus sets the caller's live status.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BarberResponse, error) {
	switch domain.BarberStatus(req.Status) {
	case domain.BarberAvailable, domain.BarberBusy, domain.BarberOffline:
	default:
		s.logger.Warn("UpdateStatus: invalid status=%s for barber=%s", req.Status, req.UserID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	barber, err := s.registryClient.UpdateStatus(ctx, req.UserID, req.Status)
	if err != nil {
		return nil, s.mapRegistryError("UpdateStatus", req.UserID, err)
	}

	s.cache.Invalidate(cache.KindBarber)
	s.logger.Info("UpdateStatus: barber=%s status=%s", req.UserID, req.Status)

	return models.FromDomainListing(barber.ToDomain()), nil
}

// GetStatistics fetches the caller's dashboard statistics.
func (s *Service) GetStatistics(ctx context.Context, userID string) (*models.StatisticsResponse, error) {
	stats, err := s.registryClient.GetStatistics(ctx, userID)
	if err != nil {
		return nil, s.mapRegistryError("GetStatistics", userID, err)
	}

	return models.FromDomainStatistics(
		stats.TotalBookings,
		stats.CompletedBookings,
		stats.CancelledBookings,
		stats.TotalRevenue,
		stats.AverageRating,
	), nil
}

func (s *Service) mapRegistryError(op, id string, err error) error {
	if errors.Is(err, registry.ErrBarberNotFound) {
		s.logger.Warn("%s: barber=%s not found", op, id)
		return ErrBarberNotFound
	}
	s.logger.Error("%s: backend call failed for id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - backend error: %v", ErrInternal, op, err)
}
