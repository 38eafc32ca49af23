package update_availability

import (
	"github.com/cortate-cl/CTC-BarberService/internal/service/barbers/models"
)

// UpdateAvailabilityRequest is the HTTP request model.
type UpdateAvailabilityRequest struct {
	ImmediateBooking bool `json:"immediateBooking"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *UpdateAvailabilityRequest) ToServiceRequest(userID string) *models.UpdateAvailabilityRequest {
	return &models.UpdateAvailabilityRequest{
		UserID:           userID,
		ImmediateBooking: r.ImmediateBooking,
	}
}
