package domain

import (
	"strings"

	"github.com/cortate-cl/CTC-BarberService/pkg/geo"
)

// Provenance indicates which source a directory listing came from.
type Provenance string

const (
	// ProvenanceRegistered marks barbers with a full platform profile.
	ProvenanceRegistered Provenance = "registered"
	// ProvenanceExternal marks barber shops found through the external places lookup.
	ProvenanceExternal Provenance = "external"
)

// BarberStatus represents the live status of a registered barber.
type BarberStatus string

const (
	BarberAvailable    BarberStatus = "available"
	BarberBusy         BarberStatus = "busy"
	BarberOffline      BarberStatus = "offline"
	BarberUnregistered BarberStatus = "unregistered"
)

// ServiceType describes where a service is performed.
type ServiceType string

const (
	ServiceInShop ServiceType = "in_shop"
	ServiceHome   ServiceType = "home"
	ServiceBoth   ServiceType = "both"
)

// Service is a single priced service offered by a barber. Prices are
// integer Chilean pesos.
type Service struct {
	Name            string
	Price           int64
	DurationMinutes *int
	Description     *string
}

// Availability carries a registered barber's booking options.
type Availability struct {
	ImmediateBooking bool
}

// BarberListing is a barber as shown to a client in the directory.
// Registered listings carry the full profile; external listings only have
// name, address, location, rating and photos. Listings are rebuilt on every
// directory fetch and never mutated in place.
type BarberListing struct {
	ID          string
	Name        string
	Address     string
	Description string
	Phone       string
	Location    geo.Point
	Provenance  Provenance
	HasProfile  bool
	Status      BarberStatus

	Rating       float64
	TotalReviews int
	Photos       []string
	Specialties  []string

	ServiceTypes []ServiceType
	Services     []Service
	WorkingHours WeeklyHours
	Availability Availability

	// DistanceKm is derived from the viewer location at query time.
	// Nil when the listing has no valid coordinates.
	DistanceKm *float64
}

// NormalizedName returns the name lowered and trimmed, as used by the
// directory dedup rule.
func (l *BarberListing) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(l.Name))
}

// NormalizedAddress returns the address lowered and trimmed.
func (l *BarberListing) NormalizedAddress() string {
	return strings.ToLower(strings.TrimSpace(l.Address))
}

// HasServices reports whether the listing carries at least one service.
func (l *BarberListing) HasServices() bool {
	return len(l.Services) > 0
}

// MinServicePrice returns the cheapest service price, 0 for no services.
func (l *BarberListing) MinServicePrice() int64 {
	if !l.HasServices() {
		return 0
	}
	min := l.Services[0].Price
	for _, s := range l.Services[1:] {
		if s.Price < min {
			min = s.Price
		}
	}
	return min
}

// MaxServicePrice returns the most expensive service price, 0 for no services.
func (l *BarberListing) MaxServicePrice() int64 {
	if !l.HasServices() {
		return 0
	}
	max := l.Services[0].Price
	for _, s := range l.Services[1:] {
		if s.Price > max {
			max = s.Price
		}
	}
	return max
}

// AvgServicePrice returns the mean service price, 0 for no services.
func (l *BarberListing) AvgServicePrice() float64 {
	if !l.HasServices() {
		return 0
	}
	var sum int64
	for _, s := range l.Services {
		sum += s.Price
	}
	return float64(sum) / float64(len(l.Services))
}

// IsAvailableNow reports whether the barber accepts clients right now:
// either marked available or taking immediate bookings.
func (l *BarberListing) IsAvailableNow() bool {
	return l.Status == BarberAvailable || l.Availability.ImmediateBooking
}

// OffersServiceType reports whether the listing offers the given service type.
func (l *BarberListing) OffersServiceType(st ServiceType) bool {
	for _, t := range l.ServiceTypes {
		if t == st {
			return true
		}
	}
	return false
}

// OffersService reports whether any service name contains the given term
// (case-insensitive).
func (l *BarberListing) OffersService(name string) bool {
	term := strings.ToLower(strings.TrimSpace(name))
	if term == "" {
		return true
	}
	for _, s := range l.Services {
		if strings.Contains(strings.ToLower(s.Name), term) {
			return true
		}
	}
	return false
}
