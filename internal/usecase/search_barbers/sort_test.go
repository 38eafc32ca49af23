package search_barbers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/pkg/ptr"
)

func TestSortByDistance(t *testing.T) {
	in := []*domain.BarberListing{
		listing("lejos", func(l *domain.BarberListing) { l.DistanceKm = ptr.Ptr(5.2) }),
		listing("cerca", func(l *domain.BarberListing) { l.DistanceKm = ptr.Ptr(0.4) }),
		listing("sin distancia"),
	}

	got := sortListings(in, SortByDistance)

	// Missing distance counts as 0 and sorts first.
	assert.Equal(t, []string{"sin distancia", "cerca", "lejos"}, names(got))
}

func TestSortByRatingDescending(t *testing.T) {
	in := []*domain.BarberListing{
		listing("tres", withRating(3)),
		listing("cinco", withRating(5)),
		listing("cuatro", withRating(4)),
	}

	got := sortListings(in, SortByRating)
	assert.Equal(t, []string{"cinco", "cuatro", "tres"}, names(got))
}

func TestSortByPrice(t *testing.T) {
	in := []*domain.BarberListing{
		listing("caro", withService("Corte", 30000)),
		listing("barato", withService("Corte", 8000)),
	}

	low := sortListings(in, SortByPriceLow)
	assert.Equal(t, []string{"barato", "caro"}, names(low))

	high := sortListings(in, SortByPriceHigh)
	assert.Equal(t, []string{"caro", "barato"}, names(high))
}

func TestSortStability(t *testing.T) {
	in := []*domain.BarberListing{
		listing("primero", withRating(4)),
		listing("segundo", withRating(4)),
		listing("tercero", withRating(4)),
	}

	got := sortListings(in, SortByRating)
	assert.Equal(t, []string{"primero", "segundo", "tercero"}, names(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := []*domain.BarberListing{
		listing("b", withRating(1)),
		listing("a", withRating(5)),
	}

	_ = sortListings(in, SortByRating)
	assert.Equal(t, []string{"b", "a"}, names(in))
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	in := []*domain.BarberListing{listing("x"), listing("y")}
	got := sortListings(in, SortKey("whatever"))
	assert.Equal(t, []string{"x", "y"}, names(got))
}
