package search_barbers

import (
	"fmt"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
)

// normalizeRequest applies the fallback location and radius bounds.
// A zero location means geolocation was denied or failed; the default
// viewer location takes its place.
func normalizeRequest(req *Request) {
	if !req.Location.IsValid() {
		req.Location = domain.DefaultLocation
	}

	if req.RadiusKm <= 0 {
		req.RadiusKm = domain.DefaultSearchRadiusKm
	}
	if req.RadiusKm > domain.MaxSearchRadiusKm {
		req.RadiusKm = domain.MaxSearchRadiusKm
	}
}

// validateRequest rejects filter combinations that cannot be evaluated.
func validateRequest(req *Request) error {
	if req.Filters.MinRating < 0 || req.Filters.MinRating > 5 {
		return fmt.Errorf("%w: minRating must be between 0 and 5", ErrInvalidInput)
	}

	if band := req.Filters.PriceBand; band != nil {
		if band.Min < 0 || band.Max < band.Min {
			return fmt.Errorf("%w: invalid price band", ErrInvalidInput)
		}
	}

	return nil
}
