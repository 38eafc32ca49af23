package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/cortate-cl/CTC-BarberService/internal/api/handlers"
	"github.com/cortate-cl/CTC-BarberService/internal/api/middleware"
	"github.com/cortate-cl/CTC-BarberService/internal/service/bookings"
	"github.com/cortate-cl/CTC-BarberService/internal/service/bookings/models"
)

const (
	msgInvalidView   = "Vista inválida, usa all, upcoming, history o today"
	msgInvalidStatus = "Estado de reserva inválido"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/me?view=upcoming&status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	view, ok := models.ParseView(r.URL.Query().Get("view"))
	if !ok {
		h.logger.Warn("GET /bookings/me - Invalid view: %s", r.URL.Query().Get("view"))
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	req := &models.ListBookingsRequest{UserID: userID, View: view}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	resp, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/me - Invalid status: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings/me - Failed: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/me - %d bookings for user_id=%s", resp.Total, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
