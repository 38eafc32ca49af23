package models

import (
	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/geo"
)

// Request models

// UpdateAvailabilityRequest toggles a barber's booking options.
type UpdateAvailabilityRequest struct {
	UserID           string
	ImmediateBooking bool
}

// UpdateStatusRequest sets a barber's live status.
type UpdateStatusRequest struct {
	UserID string
	Status string
}

// Response models

// ServiceResponse is one priced service on a barber profile.
type ServiceResponse struct {
	Name            string  `json:"name"`
	Price           int64   `json:"price"`
	FormattedPrice  string  `json:"formattedPrice"`
	DurationMinutes *int    `json:"duration,omitempty"`
	Description     *string `json:"description,omitempty"`
}

// DayHoursResponse is one weekday of working hours.
type DayHoursResponse struct {
	IsOpen bool   `json:"isOpen"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

// BarberResponse is the barber profile DTO returned by the API.
type BarberResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Location    geo.Point `json:"location"`
	Provenance  string    `json:"provenance"`
	HasProfile  bool      `json:"hasProfile"`
	Status      string    `json:"status"`

	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"totalReviews"`
	Photos       []string `json:"photos,omitempty"`
	Specialties  []string `json:"specialties,omitempty"`

	ServiceTypes []string                 `json:"serviceTypes,omitempty"`
	Services     []ServiceResponse        `json:"services,omitempty"`
	WorkingHours map[int]DayHoursResponse `json:"workingHours,omitempty"`

	ImmediateBooking bool `json:"immediateBooking"`
	AvailableNow     bool `json:"availableNow"`

	// Price range across the profile's services, absent when there are none.
	MinPrice          *int64 `json:"minPrice,omitempty"`
	MaxPrice          *int64 `json:"maxPrice,omitempty"`
	FormattedPriceMin string `json:"formattedPriceMin,omitempty"`
	FormattedPriceMax string `json:"formattedPriceMax,omitempty"`
}

// StatisticsResponse is the barber dashboard statistics DTO.
type StatisticsResponse struct {
	TotalBookings     int     `json:"totalBookings"`
	CompletedBookings int     `json:"completedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	TotalRevenue      int64   `json:"totalRevenue"`
	FormattedRevenue  string  `json:"formattedRevenue"`
	AverageRating     float64 `json:"averageRating"`
}

// Conversion

// FromDomainListing converts a barber listing into the profile DTO.
func FromDomainListing(l *domain.BarberListing) *BarberResponse {
	if l == nil {
		return nil
	}

	resp := &BarberResponse{
		ID:               l.ID,
		Name:             l.Name,
		Address:          l.Address,
		Description:      l.Description,
		Phone:            l.Phone,
		Location:         l.Location,
		Provenance:       string(l.Provenance),
		HasProfile:       l.HasProfile,
		Status:           string(l.Status),
		Rating:           l.Rating,
		TotalReviews:     l.TotalReviews,
		Photos:           l.Photos,
		Specialties:      l.Specialties,
		ImmediateBooking: l.Availability.ImmediateBooking,
		AvailableNow:     l.IsAvailableNow(),
	}

	for _, st := range l.ServiceTypes {
		resp.ServiceTypes = append(resp.ServiceTypes, string(st))
	}

	for _, s := range l.Services {
		resp.Services = append(resp.Services, ServiceResponse{
			Name:            s.Name,
			Price:           s.Price,
			FormattedPrice:  domain.FormatCLP(s.Price),
			DurationMinutes: s.DurationMinutes,
			Description:     s.Description,
		})
	}

	if len(l.WorkingHours) > 0 {
		resp.WorkingHours = make(map[int]DayHoursResponse, len(l.WorkingHours))
		for day, hours := range l.WorkingHours {
			entry := DayHoursResponse{IsOpen: hours.IsOpen}
			if hours.IsOpen {
				entry.Start = hours.Start.String()
				entry.End = hours.End.String()
			}
			resp.WorkingHours[day] = entry
		}
	}

	if l.HasServices() {
		min := l.MinServicePrice()
		max := l.MaxServicePrice()
		resp.MinPrice = &min
		resp.MaxPrice = &max
		resp.FormattedPriceMin = domain.FormatCLP(min)
		resp.FormattedPriceMax = domain.FormatCLP(max)
	}

	return resp
}

// FromDomainStatistics converts the backend statistics payload.
func FromDomainStatistics(totalBookings, completed, cancelled int, revenue int64, rating float64) *StatisticsResponse {
	return &StatisticsResponse{
		TotalBookings:     totalBookings,
		CompletedBookings: completed,
		CancelledBookings: cancelled,
		TotalRevenue:      revenue,
		FormattedRevenue:  domain.FormatCLP(revenue),
		AverageRating:     rating,
	}
}
