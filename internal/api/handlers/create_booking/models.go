package create_booking

import (
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	bookingmodels "github.com/cortate-cl/CTC-BarberService/internal/service/bookings/models"
	usecase "github.com/cortate-cl/CTC-BarberService/internal/usecase/create_booking"
	"github.com/cortate-cl/CTC-BarberService/pkg/types"
)

// ServicePayload is the booked service as sent by the client.
type ServicePayload struct {
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Duration    *int    `json:"duration,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateBookingRequest is the HTTP request model.
type CreateBookingRequest struct {
	BarberID      string         `json:"barberId"`
	Service       ServicePayload `json:"service"`
	Type          string         `json:"type"`
	ScheduledDate *string        `json:"scheduledDate,omitempty"` // "2025-10-15"
	ScheduledTime string         `json:"scheduledTime,omitempty"` // "10:00"
	ServiceType   string         `json:"serviceType"`
	ClientAddress *string        `json:"clientAddress,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	TotalPrice    int64          `json:"totalPrice"`
}

// ToUseCaseRequest converts the HTTP request into the use case model. An
// unparseable date is left nil and caught by validation.
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) *usecase.Request {
	req := &usecase.Request{
		UserID:   userID,
		BarberID: r.BarberID,
		Service: domain.Service{
			Name:            r.Service.Name,
			Price:           r.Service.Price,
			DurationMinutes: r.Service.Duration,
			Description:     r.Service.Description,
		},
		Type:          domain.BookingType(r.Type),
		ScheduledTime: types.TimeString(r.ScheduledTime),
		ServiceType:   domain.ServiceType(r.ServiceType),
		ClientAddress: r.ClientAddress,
		Phone:         r.Phone,
		Notes:         r.Notes,
		TotalPrice:    r.TotalPrice,
	}

	if r.ScheduledDate != nil {
		if date, err := time.ParseInLocation(domain.DateFormat, *r.ScheduledDate, time.Local); err == nil {
			req.ScheduledDate = &date
		}
	}

	return req
}

// CreateBookingResponse is the endpoint payload.
type CreateBookingResponse struct {
	Booking         *bookingmodels.BookingResponse `json:"booking"`
	WhatsAppMessage string                         `json:"whatsappMessage,omitempty"`
	WhatsAppURL     string                         `json:"whatsappUrl,omitempty"`
}
