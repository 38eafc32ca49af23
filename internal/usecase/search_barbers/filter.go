package search_barbers

import (
	"strings"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
)

// applyFilters returns the listings passing every active predicate. The
// input slice is never mutated.
func applyFilters(listings []*domain.BarberListing, f Filters) []*domain.BarberListing {
	filtered := make([]*domain.BarberListing, 0, len(listings))

	term := strings.ToLower(strings.TrimSpace(f.Search))

	for _, listing := range listings {
		if term != "" && !matchesSearch(listing, term) {
			continue
		}

		if f.MinRating > 0 && listing.Rating < f.MinRating {
			continue
		}

		if f.PriceBand != nil {
			if !listing.HasServices() {
				continue
			}
			avg := listing.AvgServicePrice()
			if avg < float64(f.PriceBand.Min) || avg > float64(f.PriceBand.Max) {
				continue
			}
		}

		if f.ServiceType != nil && !listing.OffersServiceType(*f.ServiceType) {
			continue
		}

		if f.ServiceName != "" && !listing.OffersService(f.ServiceName) {
			continue
		}

		if f.AvailableOnly && !listing.IsAvailableNow() {
			continue
		}

		filtered = append(filtered, listing)
	}

	return filtered
}

// matchesSearch checks the search term against name, address, specialties
// and service names; a hit in any field includes the listing.
func matchesSearch(listing *domain.BarberListing, term string) bool {
	if strings.Contains(strings.ToLower(listing.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(listing.Address), term) {
		return true
	}
	for _, specialty := range listing.Specialties {
		if strings.Contains(strings.ToLower(specialty), term) {
			return true
		}
	}
	for _, service := range listing.Services {
		if strings.Contains(strings.ToLower(service.Name), term) {
			return true
		}
	}
	return false
}
