package search_barbers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/internal/integrations/places"
	"github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
	"github.com/cortate-cl/CTC-BarberService/pkg/geo"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) IncCacheHit(kind string)  {}
func (nopMetrics) IncCacheMiss(kind string) {}

type fakeRegistry struct {
	barbers []*registry.Barber
	err     error
	calls   int
}

func (f *fakeRegistry) GetNearby(ctx context.Context, lat, lng, radiusKm float64) ([]*registry.Barber, error) {
	f.calls++
	return f.barbers, f.err
}

type fakePlaces struct {
	places []*places.Place
	err    error
	calls  int
}

func (f *fakePlaces) GetBarberShops(ctx context.Context, lat, lng, radiusKm float64) ([]*places.Place, error) {
	f.calls++
	return f.places, f.err
}

func registryBarber(id, name, address string) *registry.Barber {
	b := &registry.Barber{
		ID:      id,
		Name:    name,
		Address: address,
		Status:  "available",
	}
	b.Location.Lat = -33.44
	b.Location.Lng = -70.66
	return b
}

func placeEntry(id, name, address string) *places.Place {
	p := &places.Place{ID: id, Name: name, Address: address}
	p.Location.Lat = -33.45
	p.Location.Lng = -70.67
	return p
}

func newTestUseCase(reg *fakeRegistry, pl *fakePlaces) (*UseCase, *cache.Cache) {
	c := cache.New(5 * time.Minute)
	return NewUseCase(reg, pl, c, nopMetrics{}, nopLogger{}), c
}

func searchRequest() *Request {
	return &Request{
		Location: geo.Point{Lat: -33.4489, Lng: -70.6693},
		RadiusKm: 10,
	}
}

func TestExecuteMergesSources(t *testing.T) {
	reg := &fakeRegistry{barbers: []*registry.Barber{registryBarber("r1", "Don Juan", "Calle Uno 1")}}
	pl := &fakePlaces{places: []*places.Place{
		placeEntry("p1", "Don Juan", "Otra 9"), // duplicate by name
		placeEntry("p2", "El Tijeral", "Calle Dos 2"),
	}}
	uc, _ := newTestUseCase(reg, pl)

	resp, err := uc.Execute(context.Background(), searchRequest())
	require.NoError(t, err)

	assert.False(t, resp.Degraded)
	assert.Equal(t, 1, resp.Stats.Registered)
	assert.Equal(t, 1, resp.Stats.External)
	assert.Equal(t, 2, resp.Stats.Total)
	require.Len(t, resp.Listings, 2)

	// Every listing in range gets a distance from the viewer.
	for _, l := range resp.Listings {
		assert.NotNil(t, l.DistanceKm)
	}
}

func TestExecuteDegradesWhenOneSourceFails(t *testing.T) {
	reg := &fakeRegistry{err: errors.New("registry down")}
	pl := &fakePlaces{places: []*places.Place{placeEntry("p1", "El Tijeral", "Calle Dos 2")}}
	uc, c := newTestUseCase(reg, pl)

	resp, err := uc.Execute(context.Background(), searchRequest())
	require.NoError(t, err)

	assert.True(t, resp.Degraded)
	assert.Len(t, resp.Listings, 1)
	assert.Equal(t, domain.ProvenanceExternal, resp.Listings[0].Provenance)

	// Degraded results are not cached, so the failed source is retried.
	assert.Zero(t, c.Len())

	_, err = uc.Execute(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, reg.calls)
}

func TestExecuteFailsWhenBothSourcesFail(t *testing.T) {
	reg := &fakeRegistry{err: errors.New("registry down")}
	pl := &fakePlaces{err: errors.New("places down")}
	uc, _ := newTestUseCase(reg, pl)

	_, err := uc.Execute(context.Background(), searchRequest())
	assert.ErrorIs(t, err, ErrAllSourcesFailed)
}

func TestExecuteServesRepeatQueriesFromCache(t *testing.T) {
	reg := &fakeRegistry{barbers: []*registry.Barber{registryBarber("r1", "Don Juan", "Calle Uno 1")}}
	pl := &fakePlaces{}
	uc, _ := newTestUseCase(reg, pl)

	_, err := uc.Execute(context.Background(), searchRequest())
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), searchRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, reg.calls)
	assert.Equal(t, 1, pl.calls)
}

func TestExecuteNormalizesRequest(t *testing.T) {
	reg := &fakeRegistry{}
	pl := &fakePlaces{}
	uc, _ := newTestUseCase(reg, pl)

	// Zero location and radius fall back to the defaults instead of failing.
	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestExecuteRejectsInvalidFilters(t *testing.T) {
	uc, _ := newTestUseCase(&fakeRegistry{}, &fakePlaces{})

	req := searchRequest()
	req.Filters.MinRating = 7

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteAppliesFiltersAndSort(t *testing.T) {
	reg := &fakeRegistry{barbers: []*registry.Barber{
		func() *registry.Barber {
			b := registryBarber("r1", "Alto", "a1")
			b.Rating = 4.9
			return b
		}(),
		func() *registry.Barber {
			b := registryBarber("r2", "Bajo", "a2")
			b.Rating = 3.0
			return b
		}(),
	}}
	uc, _ := newTestUseCase(reg, &fakePlaces{})

	req := searchRequest()
	req.Filters.MinRating = 4
	req.SortBy = SortByRating

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Listings, 1)
	assert.Equal(t, "Alto", resp.Listings[0].Name)
	// Stats report pre-filter counts.
	assert.Equal(t, 2, resp.Stats.Total)
}
