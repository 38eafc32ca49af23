package search_barbers

import (
	"net/url"
	"strconv"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/geo"
	usecase "github.com/cortate-cl/CTC-BarberService/internal/usecase/search_barbers"
)

// parseQuery builds the use case request from the URL query. Unparseable
// numbers are treated as absent; range clamping happens in the use case.
func parseQuery(q url.Values) *usecase.Request {
	req := &usecase.Request{
		Location: geo.Point{
			Lat: parseFloat(q.Get("lat")),
			Lng: parseFloat(q.Get("lng")),
		},
		RadiusKm: parseFloat(q.Get("radius")),
		SortBy:   usecase.SortKey(q.Get("sortBy")),
	}

	req.Filters.Search = q.Get("search")
	req.Filters.MinRating = parseFloat(q.Get("minRating"))
	req.Filters.ServiceName = q.Get("service")
	req.Filters.AvailableOnly = q.Get("availableOnly") == "true"

	if st := q.Get("serviceType"); st != "" {
		serviceType := domain.ServiceType(st)
		req.Filters.ServiceType = &serviceType
	}

	minStr, maxStr := q.Get("priceMin"), q.Get("priceMax")
	if minStr != "" || maxStr != "" {
		band := &usecase.PriceBand{
			Min: parseInt(minStr),
			Max: parseInt(maxStr),
		}
		if band.Max == 0 && maxStr == "" {
			band.Max = int64(^uint64(0) >> 1)
		}
		req.Filters.PriceBand = band
	}

	return req
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ListingResponse is one directory entry as returned by the search endpoint.
type ListingResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description,omitempty"`
	Location    geo.Point `json:"location"`
	Provenance  string    `json:"provenance"`
	HasProfile  bool      `json:"hasProfile"`
	Status      string    `json:"status"`

	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"totalReviews"`
	Photos       []string `json:"photos,omitempty"`
	Specialties  []string `json:"specialties,omitempty"`
	ServiceTypes []string `json:"serviceTypes,omitempty"`

	AvailableNow     bool `json:"availableNow"`
	ImmediateBooking bool `json:"immediateBooking"`

	DistanceKm        *float64 `json:"distanceKm,omitempty"`
	FormattedDistance string   `json:"formattedDistance,omitempty"`

	MinPrice          *int64 `json:"minPrice,omitempty"`
	FormattedPriceMin string `json:"formattedPriceMin,omitempty"`
}

// StatsResponse reports source contributions before filtering.
type StatsResponse struct {
	Registered int `json:"registered"`
	External   int `json:"external"`
	Total      int `json:"total"`
}

// SearchResponse is the endpoint payload.
type SearchResponse struct {
	Barbers  []ListingResponse `json:"barbers"`
	Stats    StatsResponse     `json:"stats"`
	Degraded bool              `json:"degraded"`
}

func toResponse(resp *usecase.Response) *SearchResponse {
	out := &SearchResponse{
		Barbers: make([]ListingResponse, 0, len(resp.Listings)),
		Stats: StatsResponse{
			Registered: resp.Stats.Registered,
			External:   resp.Stats.External,
			Total:      resp.Stats.Total,
		},
		Degraded: resp.Degraded,
	}

	for _, l := range resp.Listings {
		entry := ListingResponse{
			ID:               l.ID,
			Name:             l.Name,
			Address:          l.Address,
			Description:      l.Description,
			Location:         l.Location,
			Provenance:       string(l.Provenance),
			HasProfile:       l.HasProfile,
			Status:           string(l.Status),
			Rating:           l.Rating,
			TotalReviews:     l.TotalReviews,
			Photos:           l.Photos,
			Specialties:      l.Specialties,
			AvailableNow:     l.IsAvailableNow(),
			ImmediateBooking: l.Availability.ImmediateBooking,
			DistanceKm:       l.DistanceKm,
		}

		for _, st := range l.ServiceTypes {
			entry.ServiceTypes = append(entry.ServiceTypes, string(st))
		}
		if l.DistanceKm != nil {
			entry.FormattedDistance = geo.FormatDistance(*l.DistanceKm)
		}
		if l.HasServices() {
			min := l.MinServicePrice()
			entry.MinPrice = &min
			entry.FormattedPriceMin = domain.FormatCLP(min)
		}

		out.Barbers = append(out.Barbers, entry)
	}

	return out
}
