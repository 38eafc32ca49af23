package get_barber

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cortate-cl/CTC-BarberService/internal/api/handlers"
	"github.com/cortate-cl/CTC-BarberService/internal/service/barbers"
)

const (
	msgInvalidBarberID = "ID de barbero inválido"
	msgNotFound        = "Barbero no encontrado"
)

type Handler struct {
	service BarberService
	logger  Logger
}

func NewHandler(service BarberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID := mux.Vars(r)["barberId"]

	barber, err := h.service.GetByID(r.Context(), barberID)
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id} - Invalid barber ID")
			handlers.RespondBadRequest(w, msgInvalidBarberID)

		case errors.Is(err, barbers.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id} - Barber not found: barber_id=%s", barberID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /barbers/{id} - Failed: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, barber)
}
