package cancel_booking

import (
	"github.com/cortate-cl/CTC-BarberService/internal/service/bookings/models"
)

// CancelBookingRequest is the HTTP request model.
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CancelBookingRequest) ToServiceRequest(userID string) *models.CancelBookingRequest {
	reason := ""
	if r.Reason != nil {
		reason = *r.Reason
	}

	return &models.CancelBookingRequest{
		UserID: userID,
		Reason: reason,
	}
}
