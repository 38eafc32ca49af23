package search_barbers

import (
	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/geo"
)

// reconcile merges external listings into the base list, dropping every
// external entry whose normalized name OR normalized address already
// appears in the base. The two lookup sets are checked independently: an
// address match alone excludes the entry even when the names differ. The
// rule deliberately tolerates false positives (two barbers sharing one
// building) to avoid showing the same physical shop twice.
func reconcile(base, external []*domain.BarberListing) []*domain.BarberListing {
	names := make(map[string]struct{}, len(base))
	addresses := make(map[string]struct{}, len(base))

	for _, listing := range base {
		if name := listing.NormalizedName(); name != "" {
			names[name] = struct{}{}
		}
		if addr := listing.NormalizedAddress(); addr != "" {
			addresses[addr] = struct{}{}
		}
	}

	combined := make([]*domain.BarberListing, len(base), len(base)+len(external))
	copy(combined, base)

	for _, listing := range external {
		if _, dup := names[listing.NormalizedName()]; dup {
			continue
		}
		if _, dup := addresses[listing.NormalizedAddress()]; dup {
			continue
		}
		combined = append(combined, listing)
	}

	return combined
}

// withDistances returns the listings annotated with the great-circle
// distance from the viewer. Listings without valid coordinates keep a nil
// distance.
func withDistances(listings []*domain.BarberListing, viewer geo.Point) []*domain.BarberListing {
	for _, listing := range listings {
		if !listing.Location.IsValid() {
			continue
		}
		d := geo.Distance(viewer, listing.Location)
		listing.DistanceKm = &d
	}
	return listings
}
