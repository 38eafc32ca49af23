package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/api/handlers"
	"github.com/cortate-cl/CTC-BarberService/internal/api/middleware"
	bookingmodels "github.com/cortate-cl/CTC-BarberService/internal/service/bookings/models"
	usecase "github.com/cortate-cl/CTC-BarberService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgValidationFailed   = "Revisa los datos de tu reserva"
	msgBarberNotFound     = "Barbero no encontrado"
	msgSlotTaken          = "Ese horario ya está reservado, elige otro"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBarberNotFound):
			h.logger.Warn("POST /bookings - Barber not found: barber_id=%s", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, usecase.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: barber_id=%s", req.BarberID)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings - Failed: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !resp.Validation.IsValid {
		h.logger.Warn("POST /bookings - Validation failed: user_id=%s, fields=%d", userID, len(resp.Validation.Errors))
		handlers.RespondValidationErrors(w, msgValidationFailed, resp.Validation.Errors)
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, user_id=%s", resp.Booking.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, &CreateBookingResponse{
		Booking:         bookingmodels.FromDomainBooking(resp.Booking, time.Now()),
		WhatsAppMessage: resp.WhatsAppMessage,
		WhatsAppURL:     resp.WhatsAppURL,
	})
}
