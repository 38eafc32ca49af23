package registry

import (
	"strconv"
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/geo"
	"github.com/cortate-cl/CTC-BarberService/pkg/types"
)

// Logger is the logging interface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Location mirrors the backend's coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ServicePayload mirrors a barber service entry.
type ServicePayload struct {
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Duration    *int    `json:"duration,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DayHoursPayload mirrors one weekday of working hours.
type DayHoursPayload struct {
	IsOpen bool   `json:"isOpen"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

// Barber mirrors a registered barber profile as the registry returns it.
type Barber struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Address      string                     `json:"address"`
	Description  string                     `json:"description,omitempty"`
	Phone        string                     `json:"phone,omitempty"`
	Location     Location                   `json:"location"`
	Rating       float64                    `json:"rating"`
	TotalReviews int                        `json:"totalReviews"`
	Photos       []string                   `json:"photos,omitempty"`
	Specialties  []string                   `json:"specialties,omitempty"`
	ServiceTypes []string                   `json:"serviceTypes,omitempty"`
	Services     []ServicePayload           `json:"services,omitempty"`
	WorkingHours map[string]DayHoursPayload `json:"workingHours,omitempty"`
	Status       string                     `json:"status"`
	Availability struct {
		ImmediateBooking bool `json:"immediateBooking"`
	} `json:"availability"`
}

// ToDomain converts the payload into a registered directory listing.
func (b *Barber) ToDomain() *domain.BarberListing {
	listing := &domain.BarberListing{
		ID:           b.ID,
		Name:         b.Name,
		Address:      b.Address,
		Description:  b.Description,
		Phone:        b.Phone,
		Location:     geo.Point{Lat: b.Location.Lat, Lng: b.Location.Lng},
		Provenance:   domain.ProvenanceRegistered,
		HasProfile:   true,
		Status:       domain.BarberStatus(b.Status),
		Rating:       b.Rating,
		TotalReviews: b.TotalReviews,
		Photos:       b.Photos,
		Specialties:  b.Specialties,
		Availability: domain.Availability{ImmediateBooking: b.Availability.ImmediateBooking},
	}

	for _, st := range b.ServiceTypes {
		listing.ServiceTypes = append(listing.ServiceTypes, domain.ServiceType(st))
	}

	for _, s := range b.Services {
		listing.Services = append(listing.Services, domain.Service{
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.Duration,
			Description:     s.Description,
		})
	}

	if len(b.WorkingHours) > 0 {
		listing.WorkingHours = make(domain.WeeklyHours, len(b.WorkingHours))
		for day, hours := range b.WorkingHours {
			weekday, err := strconv.Atoi(day)
			if err != nil || weekday < 0 || weekday > 6 {
				continue
			}
			entry := domain.DayHours{IsOpen: hours.IsOpen}
			if hours.IsOpen {
				start, errStart := types.NewTimeStringFromString(hours.Start)
				end, errEnd := types.NewTimeStringFromString(hours.End)
				if errStart != nil || errEnd != nil {
					// Malformed configuration degrades to closed for the day.
					entry = domain.DayHours{IsOpen: false}
				} else {
					entry.Start = start
					entry.End = end
				}
			}
			listing.WorkingHours[weekday] = entry
		}
	}

	return listing
}

// Booking mirrors a persisted booking as the registry returns it.
type Booking struct {
	ID            string         `json:"id"`
	BarberID      string         `json:"barberId"`
	ClientID      string         `json:"clientId"`
	Service       ServicePayload `json:"service"`
	Type          string         `json:"type"`
	ScheduledDate *string        `json:"scheduledDate,omitempty"` // "2025-10-15"
	ScheduledTime string         `json:"scheduledTime,omitempty"` // "10:00"
	ServiceType   string         `json:"serviceType"`
	ClientAddress *string        `json:"clientAddress,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	TotalPrice    int64          `json:"totalPrice"`
	Status        string         `json:"status"`

	BarberName    string `json:"barberName,omitempty"`
	BarberAddress string `json:"barberAddress,omitempty"`
	BarberPhone   string `json:"barberPhone,omitempty"`

	CancellationReason *string   `json:"cancellationReason,omitempty"`
	CancelledAt        *string   `json:"cancelledAt,omitempty"` // RFC3339
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ToDomain converts the payload into a domain booking.
func (b *Booking) ToDomain() *domain.Booking {
	booking := &domain.Booking{
		ID:       b.ID,
		BarberID: b.BarberID,
		ClientID: b.ClientID,
		Service: domain.Service{
			Name:            b.Service.Name,
			Price:           b.Service.Price,
			DurationMinutes: b.Service.Duration,
			Description:     b.Service.Description,
		},
		Type:               domain.BookingType(b.Type),
		ScheduledTime:      types.TimeString(b.ScheduledTime),
		ServiceType:        domain.ServiceType(b.ServiceType),
		ClientAddress:      b.ClientAddress,
		Phone:              b.Phone,
		Notes:              b.Notes,
		TotalPrice:         b.TotalPrice,
		Status:             domain.BookingStatus(b.Status),
		BarberName:         b.BarberName,
		BarberAddress:      b.BarberAddress,
		BarberPhone:        b.BarberPhone,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.ScheduledDate != nil {
		if date, err := time.Parse(domain.DateFormat, *b.ScheduledDate); err == nil {
			booking.ScheduledDate = &date
		}
	}
	if b.CancelledAt != nil {
		if at, err := time.Parse(time.RFC3339, *b.CancelledAt); err == nil {
			booking.CancelledAt = &at
		}
	}

	return booking
}

// CreateBookingPayload is the body sent to POST /bookings.
type CreateBookingPayload struct {
	BarberID      string         `json:"barberId"`
	Service       ServicePayload `json:"service"`
	Type          string         `json:"type"`
	ScheduledDate *string        `json:"scheduledDate,omitempty"`
	ScheduledTime string         `json:"scheduledTime,omitempty"`
	ServiceType   string         `json:"serviceType"`
	ClientAddress *string        `json:"clientAddress,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	TotalPrice    int64          `json:"totalPrice"`
}

// CompletionPayload is the body sent when a barber completes a booking.
type CompletionPayload struct {
	FinalPrice *int64  `json:"finalPrice,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// Statistics mirrors the barber dashboard statistics payload.
type Statistics struct {
	TotalBookings     int     `json:"totalBookings"`
	CompletedBookings int     `json:"completedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	TotalRevenue      int64   `json:"totalRevenue"`
	AverageRating     float64 `json:"averageRating"`
}
