package search_barbers

import (
	"sort"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
)

// sortListings returns a new slice ordered by the given key. The sort is
// stable: equal elements keep their input order. An unknown key returns
// the listings in input order.
func sortListings(listings []*domain.BarberListing, key SortKey) []*domain.BarberListing {
	sorted := make([]*domain.BarberListing, len(listings))
	copy(sorted, listings)

	switch key {
	case SortByDistance:
		// Missing distance counts as 0 and sorts first.
		sort.SliceStable(sorted, func(i, j int) bool {
			return distanceOrZero(sorted[i]) < distanceOrZero(sorted[j])
		})
	case SortByRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case SortByPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MinServicePrice() < sorted[j].MinServicePrice()
		})
	case SortByPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MaxServicePrice() > sorted[j].MaxServicePrice()
		})
	case SortByReviews:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalReviews > sorted[j].TotalReviews
		})
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	}

	return sorted
}

func distanceOrZero(listing *domain.BarberListing) float64 {
	if listing.DistanceKm == nil {
		return 0
	}
	return *listing.DistanceKm
}
