package search_barbers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
)

func listing(name string, opts ...func(*domain.BarberListing)) *domain.BarberListing {
	l := &domain.BarberListing{Name: name}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func withRating(r float64) func(*domain.BarberListing) {
	return func(l *domain.BarberListing) { l.Rating = r }
}

func withService(name string, price int64) func(*domain.BarberListing) {
	return func(l *domain.BarberListing) {
		l.Services = append(l.Services, domain.Service{Name: name, Price: price})
	}
}

func withStatus(s domain.BarberStatus) func(*domain.BarberListing) {
	return func(l *domain.BarberListing) { l.Status = s }
}

func names(listings []*domain.BarberListing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Name)
	}
	return out
}

func TestApplyFiltersMinRating(t *testing.T) {
	in := []*domain.BarberListing{
		listing("alto", withRating(4.8)),
		listing("bajo", withRating(3.2)),
		listing("sin rating"),
	}

	got := applyFilters(in, Filters{MinRating: 4.0})
	assert.Equal(t, []string{"alto"}, names(got))
}

func TestApplyFiltersPriceBand(t *testing.T) {
	in := []*domain.BarberListing{
		listing("barato", withService("Corte", 8000)),
		listing("medio", withService("Corte", 12000), withService("Barba", 10000)),
		listing("caro", withService("Corte", 30000)),
		listing("sin servicios"),
	}

	got := applyFilters(in, Filters{PriceBand: &PriceBand{Min: 10000, Max: 15000}})

	// The band applies to the average price; service-less listings are
	// excluded when a band is set.
	assert.Equal(t, []string{"medio"}, names(got))
}

func TestApplyFiltersServiceType(t *testing.T) {
	home := domain.ServiceHome
	in := []*domain.BarberListing{
		listing("a domicilio", func(l *domain.BarberListing) {
			l.ServiceTypes = []domain.ServiceType{domain.ServiceHome}
		}),
		listing("solo local", func(l *domain.BarberListing) {
			l.ServiceTypes = []domain.ServiceType{domain.ServiceInShop}
		}),
	}

	got := applyFilters(in, Filters{ServiceType: &home})
	assert.Equal(t, []string{"a domicilio"}, names(got))
}

func TestApplyFiltersAvailableOnly(t *testing.T) {
	in := []*domain.BarberListing{
		listing("disponible", withStatus(domain.BarberAvailable)),
		listing("inmediato", withStatus(domain.BarberBusy), func(l *domain.BarberListing) {
			l.Availability.ImmediateBooking = true
		}),
		listing("offline", withStatus(domain.BarberOffline)),
	}

	got := applyFilters(in, Filters{AvailableOnly: true})
	assert.Equal(t, []string{"disponible", "inmediato"}, names(got))
}

func TestApplyFiltersSearchAcrossFields(t *testing.T) {
	in := []*domain.BarberListing{
		listing("Barbería Fade Masters"),
		listing("Otro", func(l *domain.BarberListing) { l.Address = "Av. Fade 123" }),
		listing("Tercero", func(l *domain.BarberListing) { l.Specialties = []string{"Fade clásico"} }),
		listing("Cuarto", withService("Corte fade", 10000)),
		listing("Quinto"),
	}

	got := applyFilters(in, Filters{Search: "  FADE "})
	assert.Len(t, got, 4)
}

func TestApplyFiltersAreANDCombined(t *testing.T) {
	in := []*domain.BarberListing{
		listing("pasa todo", withRating(4.5), withService("Corte", 10000), withStatus(domain.BarberAvailable)),
		listing("solo rating", withRating(4.5), withStatus(domain.BarberOffline)),
	}

	got := applyFilters(in, Filters{MinRating: 4.0, AvailableOnly: true})
	assert.Equal(t, []string{"pasa todo"}, names(got))
}

func TestApplyFiltersEmptyKeepsAll(t *testing.T) {
	in := []*domain.BarberListing{listing("a"), listing("b")}
	got := applyFilters(in, Filters{})
	assert.Len(t, got, 2)
}
