package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
)

// UseCase generates the provisional booking slots for a barber on a given
// date from the barber's weekly working hours.
type UseCase struct {
	registryClient RegistryClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase creates a new instance of the use case.
func NewUseCase(registryClient RegistryClient, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		registryClient: registryClient,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Execute generates the slot list.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Fetch the barber's schedule
	barber, err := uc.registryClient.GetBarberByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, registry.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber %s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to fetch barber %s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to fetch barber: %v", ErrInternal, err)
	}

	// 3. Resolve the day's hours; an absent schedule means no availability
	hours := barber.ToDomain().WorkingHours.ForDate(req.Date)

	// 4. Generate slots, suppressing anything already in the past
	slots := generateTimeSlots(hours, req.Date, uc.timeProvider.Now())

	uc.logger.Info("GetAvailableSlots: barber=%s date=%s slots=%d",
		req.BarberID, req.Date.Format("2006-01-02"), len(slots))

	return &Response{
		BarberID: req.BarberID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}
