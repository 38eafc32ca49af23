package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
	"github.com/cortate-cl/CTC-BarberService/internal/service/bookings/models"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
)

// Service manages the booking lifecycle on top of the registry backend.
// Transition legality is checked locally before any remote call, so an
// illegal action never leaves the process.
type Service struct {
	registryClient RegistryClient
	cache          Cache
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewService creates a new bookings service.
func NewService(
	registryClient RegistryClient,
	bookingCache Cache,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		registryClient: registryClient,
		cache:          bookingCache,
		metrics:        metrics,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// GetByID fetches a single booking. Only the booking's client or its
// barber may see it.
func (s *Service) GetByID(ctx context.Context, userID, bookingID string) (*models.BookingResponse, error) {
	booking, err := s.fetchBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.ClientID != userID && booking.BarberID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to booking=%s", userID, bookingID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// GetUserBookings returns the caller's bookings as a client, narrowed by
// the requested view and optional status.
func (s *Service) GetUserBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	return s.listBookings(ctx, req, "user", s.registryClient.GetUserBookings)
}

// GetBarberBookings returns the caller's bookings as a barber, narrowed by
// the requested view and optional status.
func (s *Service) GetBarberBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	return s.listBookings(ctx, req, "barber", s.registryClient.GetBarberBookings)
}

// Confirm accepts a pending booking. Barber action.
func (s *Service) Confirm(ctx context.Context, userID, bookingID string) (*models.BookingResponse, error) {
	booking, err := s.fetchBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BarberID != userID {
		s.logger.Warn("Confirm: user=%s is not the barber of booking=%s", userID, bookingID)
		return nil, ErrAccessDenied
	}

	if _, ok := domain.NextStatus(booking.Status, domain.EventConfirm); !ok {
		s.logger.Warn("Confirm: illegal from status=%s for booking=%s", booking.Status, bookingID)
		return nil, ErrInvalidTransition
	}

	updated, err := s.registryClient.ConfirmBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, s.mapRegistryError("Confirm", bookingID, err)
	}

	s.cache.Invalidate(cache.KindBookingList)
	s.logger.Info("Confirm: booking=%s confirmed by barber=%s", bookingID, userID)

	return models.FromDomainBooking(updated.ToDomain(), s.timeProvider.Now()), nil
}

// Cancel cancels a booking. The client or the barber may cancel; the
// response reports whether the cancellation fell inside the penalty window.
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error) {
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := s.fetchBooking(ctx, req.UserID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.ClientID != req.UserID && booking.BarberID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%s to booking=%s", req.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: illegal from status=%s for booking=%s", booking.Status, bookingID)
		return nil, ErrInvalidTransition
	}

	now := s.timeProvider.Now()
	penaltyApplies := !booking.CanCancelWithoutPenalty(now)

	updated, err := s.registryClient.CancelBooking(ctx, req.UserID, bookingID, req.Reason)
	if err != nil {
		return nil, s.mapRegistryError("Cancel", bookingID, err)
	}

	s.cache.Invalidate(cache.KindBookingList)
	s.logger.Info("Cancel: booking=%s cancelled by user=%s (penalty=%t)", bookingID, req.UserID, penaltyApplies)

	return &models.CancelBookingResponse{
		Booking:        *models.FromDomainBooking(updated.ToDomain(), now),
		PenaltyApplies: penaltyApplies,
	}, nil
}

// Complete closes a confirmed or in-progress booking. Barber action.
func (s *Service) Complete(ctx context.Context, bookingID string, req *models.CompleteBookingRequest) (*models.BookingResponse, error) {
	booking, err := s.fetchBooking(ctx, req.UserID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BarberID != req.UserID {
		s.logger.Warn("Complete: user=%s is not the barber of booking=%s", req.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if _, ok := domain.NextStatus(booking.Status, domain.EventComplete); !ok {
		s.logger.Warn("Complete: illegal from status=%s for booking=%s", booking.Status, bookingID)
		return nil, ErrInvalidTransition
	}

	completion := &registry.CompletionPayload{
		FinalPrice: req.FinalPrice,
		Notes:      req.Notes,
	}

	updated, err := s.registryClient.CompleteBooking(ctx, req.UserID, bookingID, completion)
	if err != nil {
		return nil, s.mapRegistryError("Complete", bookingID, err)
	}

	s.cache.Invalidate(cache.KindBookingList)
	s.logger.Info("Complete: booking=%s completed by barber=%s", bookingID, req.UserID)

	return models.FromDomainBooking(updated.ToDomain(), s.timeProvider.Now()), nil
}

// MarkNoShow marks a confirmed booking as a no-show. Barber action.
func (s *Service) MarkNoShow(ctx context.Context, userID, bookingID string) (*models.BookingResponse, error) {
	booking, err := s.fetchBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BarberID != userID {
		s.logger.Warn("MarkNoShow: user=%s is not the barber of booking=%s", userID, bookingID)
		return nil, ErrAccessDenied
	}

	if _, ok := domain.NextStatus(booking.Status, domain.EventNoShow); !ok {
		s.logger.Warn("MarkNoShow: illegal from status=%s for booking=%s", booking.Status, bookingID)
		return nil, ErrInvalidTransition
	}

	updated, err := s.registryClient.MarkNoShow(ctx, userID, bookingID)
	if err != nil {
		return nil, s.mapRegistryError("MarkNoShow", bookingID, err)
	}

	s.cache.Invalidate(cache.KindBookingList)
	s.logger.Info("MarkNoShow: booking=%s marked no-show by barber=%s", bookingID, userID)

	return models.FromDomainBooking(updated.ToDomain(), s.timeProvider.Now()), nil
}

// Helpers

// listBookings serves both list endpoints: the full list is cached per
// caller, the view and status filters run per request on top of it.
func (s *Service) listBookings(
	ctx context.Context,
	req *models.ListBookingsRequest,
	role string,
	fetch func(ctx context.Context, userID string) ([]*registry.Booking, error),
) (*models.BookingListResponse, error) {
	if req.Status != nil {
		if _, ok := domain.ParseBookingStatus(*req.Status); !ok {
			s.logger.Warn("listBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
	}

	key := cache.Key{Kind: cache.KindBookingList, Params: role + ":" + req.UserID}

	var bookings []*domain.Booking
	if cached, ok := s.cache.Get(key); ok {
		if list, ok := cached.([]*domain.Booking); ok {
			s.metrics.IncCacheHit(string(cache.KindBookingList))
			bookings = list
		}
	}

	if bookings == nil {
		s.metrics.IncCacheMiss(string(cache.KindBookingList))

		fetched, err := fetch(ctx, req.UserID)
		if err != nil {
			s.logger.Error("listBookings: backend call failed for user=%s: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: listBookings - backend error: %v", ErrInternal, err)
		}

		bookings = make([]*domain.Booking, 0, len(fetched))
		for _, b := range fetched {
			bookings = append(bookings, b.ToDomain())
		}
		s.cache.Set(key, bookings)
	}

	now := s.timeProvider.Now()
	filtered := filterByView(bookings, req.View, now)
	if req.Status != nil {
		filtered = filterByStatus(filtered, domain.BookingStatus(*req.Status))
	}

	s.logger.Info("listBookings: %d of %d bookings for user=%s (role=%s, view=%s)",
		len(filtered), len(bookings), req.UserID, role, req.View)

	return models.FromDomainBookingList(filtered, now), nil
}

func (s *Service) fetchBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.registryClient.GetBookingByID(ctx, userID, bookingID)
	if err != nil {
		return nil, s.mapRegistryError("fetchBooking", bookingID, err)
	}
	return booking.ToDomain(), nil
}

func (s *Service) mapRegistryError(op, bookingID string, err error) error {
	if errors.Is(err, registry.ErrBookingNotFound) {
		s.logger.Warn("%s: booking=%s not found", op, bookingID)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: backend call failed for booking=%s: %v", op, bookingID, err)
	return fmt.Errorf("%w: %s - backend error: %v", ErrInternal, op, err)
}

// filterByView narrows a booking list to the requested view. Upcoming
// keeps active future bookings, history keeps terminal or past ones, today
// keeps active bookings effective on the current calendar date.
func filterByView(bookings []*domain.Booking, view models.View, now time.Time) []*domain.Booking {
	if view == "" || view == models.ViewAll {
		return bookings
	}

	out := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		at := b.EffectiveTime()
		switch view {
		case models.ViewUpcoming:
			if b.IsActive() && at.After(now) {
				out = append(out, b)
			}
		case models.ViewHistory:
			if !b.IsActive() || !at.After(now) {
				out = append(out, b)
			}
		case models.ViewToday:
			y1, m1, d1 := at.Date()
			y2, m2, d2 := now.Date()
			if b.IsActive() && y1 == y2 && m1 == m2 && d1 == d2 {
				out = append(out, b)
			}
		}
	}
	return out
}

func filterByStatus(bookings []*domain.Booking, status domain.BookingStatus) []*domain.Booking {
	out := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}
