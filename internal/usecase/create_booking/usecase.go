package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
)

// UseCase validates a booking form, submits it to the backend and prepares
// the WhatsApp coordination link for the client.
type UseCase struct {
	registryClient RegistryClient
	cache          Cache
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase creates a new instance of the use case.
func NewUseCase(registryClient RegistryClient, bookingCache Cache, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		registryClient: registryClient,
		cache:          bookingCache,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Execute runs the booking creation flow. A failed validation is a normal
// outcome: the response carries the field errors and Booking stays nil.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate the form, collecting every field error
	validation := validateRequest(req, uc.timeProvider.Now())
	if !validation.IsValid {
		uc.logger.Warn("CreateBooking: validation failed for user %s: %v", req.UserID, validation.Errors)
		return &Response{Validation: validation}, nil
	}

	// 2. Confirm the barber exists and is bookable
	barber, err := uc.registryClient.GetBarberByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, registry.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber %s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to fetch barber %s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to fetch barber: %v", ErrInternal, err)
	}

	// 3. Submit the booking
	payload := buildPayload(req)
	created, err := uc.registryClient.CreateBooking(ctx, req.UserID, payload)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrSlotTaken):
			uc.logger.Warn("CreateBooking: slot taken for barber %s at %s", req.BarberID, req.ScheduledTime)
			return nil, ErrSlotTaken
		case errors.Is(err, registry.ErrBarberNotFound):
			return nil, ErrBarberNotFound
		default:
			uc.logger.Error("CreateBooking: backend call failed: %v", err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	// 4. The user's booking list changed, drop its cached copies
	uc.cache.Invalidate(cache.KindBookingList)

	// 5. Prepare the WhatsApp coordination message
	booking := created.ToDomain()
	if booking.BarberName == "" {
		booking.BarberName = barber.Name
	}
	if booking.BarberAddress == "" {
		booking.BarberAddress = barber.Address
	}
	if booking.BarberPhone == "" {
		booking.BarberPhone = barber.Phone
	}

	message := buildWhatsAppMessage(booking)

	uc.logger.Info("CreateBooking: booking %s created for user %s (barber=%s, type=%s)",
		booking.ID, req.UserID, booking.BarberID, booking.Type)

	return &Response{
		Validation:      ValidationResult{IsValid: true, Errors: map[string]string{}},
		Booking:         booking,
		WhatsAppMessage: message,
		WhatsAppURL:     whatsAppURL(booking.BarberPhone, message),
	}, nil
}

func buildPayload(req *Request) *registry.CreateBookingPayload {
	payload := &registry.CreateBookingPayload{
		BarberID: req.BarberID,
		Service: registry.ServicePayload{
			Name:        req.Service.Name,
			Price:       req.Service.Price,
			Duration:    req.Service.DurationMinutes,
			Description: req.Service.Description,
		},
		Type:          string(req.Type),
		ServiceType:   string(req.ServiceType),
		ClientAddress: req.ClientAddress,
		Phone:         req.Phone,
		Notes:         req.Notes,
		TotalPrice:    req.TotalPrice,
	}

	if req.Type == domain.BookingScheduled && req.ScheduledDate != nil {
		date := req.ScheduledDate.Format(domain.DateFormat)
		payload.ScheduledDate = &date
		payload.ScheduledTime = req.ScheduledTime.String()
	}

	return payload
}
