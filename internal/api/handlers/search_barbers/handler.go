package search_barbers

import (
	"errors"
	"net/http"

	"github.com/cortate-cl/CTC-BarberService/internal/api/handlers"
	usecase "github.com/cortate-cl/CTC-BarberService/internal/usecase/search_barbers"
)

const (
	msgInvalidFilters     = "Filtros de búsqueda inválidos"
	msgSourcesUnavailable = "No pudimos cargar los barberos, intenta nuevamente más tarde"
)

type Handler struct {
	useCase SearchUseCase
	logger  Logger
}

func NewHandler(useCase SearchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := parseQuery(r.URL.Query())

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("GET /barbers/search - Invalid filters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilters)

		case errors.Is(err, usecase.ErrAllSourcesFailed):
			h.logger.Error("GET /barbers/search - All sources failed")
			handlers.RespondServiceUnavailable(w, msgSourcesUnavailable)

		default:
			h.logger.Error("GET /barbers/search - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/search - %d barbers returned (degraded=%t)", len(resp.Listings), resp.Degraded)
	handlers.RespondJSON(w, http.StatusOK, toResponse(resp))
}
