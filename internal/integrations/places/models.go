package places

import (
	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/geo"
)

// Logger is the logging interface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Place is a barber-like entry from the external places lookup. It carries
// no platform profile: no services, no working hours, no live status.
type Place struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"totalReviews"`
	Photos       []string `json:"photos,omitempty"`
}

// ToDomain converts the place into an external directory listing.
func (p *Place) ToDomain() *domain.BarberListing {
	return &domain.BarberListing{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Location:     geo.Point{Lat: p.Location.Lat, Lng: p.Location.Lng},
		Provenance:   domain.ProvenanceExternal,
		HasProfile:   false,
		Status:       domain.BarberUnregistered,
		Rating:       p.Rating,
		TotalReviews: p.TotalReviews,
		Photos:       p.Photos,
	}
}
