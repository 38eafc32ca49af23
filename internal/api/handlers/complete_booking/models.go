package complete_booking

import (
	"github.com/cortate-cl/CTC-BarberService/internal/service/bookings/models"
)

// CompleteBookingRequest is the HTTP request model. The final price is
// optional and overrides the booked price when the service changed on site.
type CompleteBookingRequest struct {
	FinalPrice *int64  `json:"finalPrice,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CompleteBookingRequest) ToServiceRequest(userID string) *models.CompleteBookingRequest {
	return &models.CompleteBookingRequest{
		UserID:     userID,
		FinalPrice: r.FinalPrice,
		Notes:      r.Notes,
	}
}
