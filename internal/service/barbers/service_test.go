package barbers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
	"github.com/cortate-cl/CTC-BarberService/internal/service/barbers/models"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) IncCacheHit(kind string)  {}
func (nopMetrics) IncCacheMiss(kind string) {}

type fakeRegistry struct {
	barber *registry.Barber
	stats  *registry.Statistics
	err    error
	calls  int
}

func (f *fakeRegistry) GetBarberByID(ctx context.Context, barberID string) (*registry.Barber, error) {
	f.calls++
	return f.barber, f.err
}

func (f *fakeRegistry) UpdateAvailability(ctx context.Context, userID string, immediateBooking bool) (*registry.Barber, error) {
	f.calls++
	out := *f.barber
	out.Availability.ImmediateBooking = immediateBooking
	return &out, f.err
}

func (f *fakeRegistry) UpdateStatus(ctx context.Context, userID string, status string) (*registry.Barber, error) {
	f.calls++
	out := *f.barber
	out.Status = status
	return &out, f.err
}

func (f *fakeRegistry) GetStatistics(ctx context.Context, userID string) (*registry.Statistics, error) {
	f.calls++
	return f.stats, f.err
}

func testBarber() *registry.Barber {
	b := &registry.Barber{
		ID:      "b1",
		Name:    "Don Juan",
		Address: "Av. Providencia 1234",
		Status:  "available",
		Rating:  4.8,
		Services: []registry.ServicePayload{
			{Name: "Corte de pelo", Price: 12000},
			{Name: "Corte + barba", Price: 18000},
		},
	}
	return b
}

func newTestService(reg *fakeRegistry) (*Service, *cache.Cache) {
	c := cache.New(5 * time.Minute)
	return NewService(reg, c, nopMetrics{}, nopLogger{}), c
}

func TestGetByIDCachesProfile(t *testing.T) {
	reg := &fakeRegistry{barber: testBarber()}
	svc, _ := newTestService(reg)

	resp, err := svc.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Don Juan", resp.Name)
	assert.Equal(t, "$12.000", resp.FormattedPriceMin)
	assert.Equal(t, "$18.000", resp.FormattedPriceMax)

	_, err = svc.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, 1, reg.calls)
}

func TestGetByIDRequiresID(t *testing.T) {
	svc, _ := newTestService(&fakeRegistry{})

	_, err := svc.GetByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newTestService(&fakeRegistry{err: registry.ErrBarberNotFound})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestUpdateAvailabilityDropsCachedProfiles(t *testing.T) {
	reg := &fakeRegistry{barber: testBarber()}
	svc, c := newTestService(reg)

	_, err := svc.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	resp, err := svc.UpdateAvailability(context.Background(), &models.UpdateAvailabilityRequest{
		UserID:           "b1",
		ImmediateBooking: true,
	})
	require.NoError(t, err)
	assert.True(t, resp.ImmediateBooking)
	assert.Zero(t, c.Len())
}

func TestUpdateStatus(t *testing.T) {
	reg := &fakeRegistry{barber: testBarber()}
	svc, _ := newTestService(reg)

	resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		UserID: "b1",
		Status: "busy",
	})
	require.NoError(t, err)
	assert.Equal(t, "busy", resp.Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	reg := &fakeRegistry{barber: testBarber()}
	svc, _ := newTestService(reg)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		UserID: "b1",
		Status: "sleeping",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, reg.calls)
}

func TestGetStatistics(t *testing.T) {
	reg := &fakeRegistry{stats: &registry.Statistics{
		TotalBookings:     42,
		CompletedBookings: 30,
		CancelledBookings: 5,
		TotalRevenue:      1500000,
		AverageRating:     4.6,
	}}
	svc, _ := newTestService(reg)

	resp, err := svc.GetStatistics(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, 42, resp.TotalBookings)
	assert.Equal(t, "$1.500.000", resp.FormattedRevenue)
}

func TestGetStatisticsBackendFailure(t *testing.T) {
	svc, _ := newTestService(&fakeRegistry{err: errors.New("down")})

	_, err := svc.GetStatistics(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrInternal)
}
