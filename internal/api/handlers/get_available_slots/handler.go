package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cortate-cl/CTC-BarberService/internal/api/handlers"
	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	usecase "github.com/cortate-cl/CTC-BarberService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate = "Fecha inválida, usa el formato AAAA-MM-DD"
	msgNotFound    = "Barbero no encontrado"
)

type Handler struct {
	useCase SlotsUseCase
	logger  Logger
}

func NewHandler(useCase SlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/slots?date=2025-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID := mux.Vars(r)["barberId"]

	date, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("date"), time.Local)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &usecase.Request{
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, usecase.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/slots - Barber not found: barber_id=%s", barberID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /barbers/{id}/slots - Failed: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/slots - %d slots for barber_id=%s", len(resp.Slots), barberID)
	handlers.RespondJSON(w, http.StatusOK, toResponse(resp))
}
