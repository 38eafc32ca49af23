package search_barbers

import (
	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/geo"
)

// SortKey selects the ordering of the result list.
type SortKey string

const (
	SortByDistance  SortKey = "distance"
	SortByRating    SortKey = "rating"
	SortByPriceLow  SortKey = "price_low"
	SortByPriceHigh SortKey = "price_high"
	SortByReviews   SortKey = "reviews"
	SortByName      SortKey = "name"
)

// PriceBand is an inclusive [Min, Max] band over average service price.
type PriceBand struct {
	Min int64
	Max int64
}

// Filters are the AND-combined predicates applied to the merged directory.
// Zero values mean "not filtering on this".
type Filters struct {
	// Search matches case-insensitively against name, address, specialties
	// and service names.
	Search string
	// MinRating excludes listings rated below the threshold; listings
	// without a rating count as 0.
	MinRating float64
	// PriceBand filters on average service price; listings with no
	// services are excluded when set.
	PriceBand *PriceBand
	// ServiceType requires the listing to offer the given service type.
	ServiceType *domain.ServiceType
	// ServiceName requires a service whose name contains the term.
	ServiceName string
	// AvailableOnly keeps only barbers available right now.
	AvailableOnly bool
}

// Request is a directory search query. A zero Location falls back to the
// default viewer location (Santiago).
type Request struct {
	Location geo.Point
	RadiusKm float64
	Filters  Filters
	SortBy   SortKey
}

// SourceStats reports how many listings each source contributed before
// filtering, for observability.
type SourceStats struct {
	Registered int
	External   int
	Total      int
}

// Response is the filtered, sorted directory slice for display.
type Response struct {
	Listings []*domain.BarberListing
	Stats    SourceStats
	// Degraded is set when one source failed and the result only covers
	// the surviving one.
	Degraded bool
}

// directoryResult is the cacheable merged directory for one
// (location, radius) query, before per-request filtering.
type directoryResult struct {
	listings []*domain.BarberListing
	stats    SourceStats
}
