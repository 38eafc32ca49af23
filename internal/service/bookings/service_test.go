package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	"github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
	"github.com/cortate-cl/CTC-BarberService/internal/service/bookings/models"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
	"github.com/cortate-cl/CTC-BarberService/pkg/ptr"
)

var now = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) IncCacheHit(kind string)  {}
func (nopMetrics) IncCacheMiss(kind string) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRegistry struct {
	booking  *registry.Booking
	bookings []*registry.Booking
	err      error

	listCalls   int
	updateCalls int
}

func (f *fakeRegistry) GetBookingByID(ctx context.Context, userID, bookingID string) (*registry.Booking, error) {
	return f.booking, f.err
}

func (f *fakeRegistry) GetUserBookings(ctx context.Context, userID string) ([]*registry.Booking, error) {
	f.listCalls++
	return f.bookings, f.err
}

func (f *fakeRegistry) GetBarberBookings(ctx context.Context, userID string) ([]*registry.Booking, error) {
	f.listCalls++
	return f.bookings, f.err
}

func (f *fakeRegistry) ConfirmBooking(ctx context.Context, userID, bookingID string) (*registry.Booking, error) {
	f.updateCalls++
	return f.updated("confirmed"), nil
}

func (f *fakeRegistry) CancelBooking(ctx context.Context, userID, bookingID, reason string) (*registry.Booking, error) {
	f.updateCalls++
	return f.updated("cancelled"), nil
}

func (f *fakeRegistry) CompleteBooking(ctx context.Context, userID, bookingID string, completion *registry.CompletionPayload) (*registry.Booking, error) {
	f.updateCalls++
	return f.updated("completed"), nil
}

func (f *fakeRegistry) MarkNoShow(ctx context.Context, userID, bookingID string) (*registry.Booking, error) {
	f.updateCalls++
	return f.updated("no-show"), nil
}

func (f *fakeRegistry) updated(status string) *registry.Booking {
	out := *f.booking
	out.Status = status
	return &out
}

// scheduledBooking is pending and set for tomorrow at 10:00.
func scheduledBooking() *registry.Booking {
	date := "2025-10-15"
	return &registry.Booking{
		ID:            "bk1",
		BarberID:      "barber1",
		ClientID:      "client1",
		Service:       registry.ServicePayload{Name: "Corte de pelo", Price: 12000},
		Type:          "scheduled",
		ScheduledDate: &date,
		ScheduledTime: "10:00",
		ServiceType:   "in_shop",
		TotalPrice:    12000,
		Status:        "pending",
		CreatedAt:     now.Add(-time.Hour),
	}
}

func withStatus(b *registry.Booking, status string) *registry.Booking {
	b.Status = status
	return b
}

func newTestService(reg *fakeRegistry) (*Service, *cache.Cache) {
	c := cache.New(2 * time.Minute)
	return NewService(reg, c, nopMetrics{}, fixedTime{now: now}, nopLogger{}), c
}

func TestGetByIDAccess(t *testing.T) {
	svc, _ := newTestService(&fakeRegistry{booking: scheduledBooking()})

	resp, err := svc.GetByID(context.Background(), "client1", "bk1")
	require.NoError(t, err)
	assert.Equal(t, "bk1", resp.ID)
	assert.Equal(t, "$12.000", resp.FormattedPrice)

	_, err = svc.GetByID(context.Background(), "barber1", "bk1")
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), "stranger", "bk1")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newTestService(&fakeRegistry{err: registry.ErrBookingNotFound})

	_, err := svc.GetByID(context.Background(), "client1", "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirm(t *testing.T) {
	reg := &fakeRegistry{booking: scheduledBooking()}
	svc, c := newTestService(reg)

	c.Set(cache.Key{Kind: cache.KindBookingList, Params: "user:client1"}, []*domain.Booking{})

	resp, err := svc.Confirm(context.Background(), "barber1", "bk1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	// Stale cached lists are dropped after the write.
	assert.Zero(t, c.Len())
}

func TestConfirmOnlyBarber(t *testing.T) {
	reg := &fakeRegistry{booking: scheduledBooking()}
	svc, _ := newTestService(reg)

	_, err := svc.Confirm(context.Background(), "client1", "bk1")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, reg.updateCalls)
}

func TestConfirmIllegalTransition(t *testing.T) {
	reg := &fakeRegistry{booking: withStatus(scheduledBooking(), "completed")}
	svc, _ := newTestService(reg)

	_, err := svc.Confirm(context.Background(), "barber1", "bk1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Zero(t, reg.updateCalls)
}

func TestCancelWithoutPenalty(t *testing.T) {
	// Tomorrow at 10:00 is far outside the 30 minute notice.
	svc, _ := newTestService(&fakeRegistry{booking: scheduledBooking()})

	resp, err := svc.Cancel(context.Background(), "bk1", &models.CancelBookingRequest{
		UserID: "client1",
		Reason: "No puedo asistir",
	})
	require.NoError(t, err)
	assert.False(t, resp.PenaltyApplies)
	assert.Equal(t, "cancelled", resp.Booking.Status)
}

func TestCancelWithPenalty(t *testing.T) {
	b := scheduledBooking()
	date := now.Format(domain.DateFormat)
	b.ScheduledDate = &date
	b.ScheduledTime = "12:20" // 20 minutes away, inside the 30 minute notice
	svc, _ := newTestService(&fakeRegistry{booking: b})

	resp, err := svc.Cancel(context.Background(), "bk1", &models.CancelBookingRequest{UserID: "client1"})
	require.NoError(t, err)
	assert.True(t, resp.PenaltyApplies)
}

func TestCancelTerminalBooking(t *testing.T) {
	reg := &fakeRegistry{booking: withStatus(scheduledBooking(), "completed")}
	svc, _ := newTestService(reg)

	_, err := svc.Cancel(context.Background(), "bk1", &models.CancelBookingRequest{UserID: "client1"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Zero(t, reg.updateCalls)
}

func TestCancelReasonTooLong(t *testing.T) {
	svc, _ := newTestService(&fakeRegistry{booking: scheduledBooking()})

	_, err := svc.Cancel(context.Background(), "bk1", &models.CancelBookingRequest{
		UserID: "client1",
		Reason: strings.Repeat("x", domain.MaxCancellationReasonLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompleteFromConfirmed(t *testing.T) {
	reg := &fakeRegistry{booking: withStatus(scheduledBooking(), "confirmed")}
	svc, _ := newTestService(reg)

	resp, err := svc.Complete(context.Background(), "bk1", &models.CompleteBookingRequest{
		UserID:     "barber1",
		FinalPrice: ptr.Ptr(int64(15000)),
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestCompleteFromPendingIsIllegal(t *testing.T) {
	reg := &fakeRegistry{booking: scheduledBooking()}
	svc, _ := newTestService(reg)

	_, err := svc.Complete(context.Background(), "bk1", &models.CompleteBookingRequest{UserID: "barber1"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMarkNoShow(t *testing.T) {
	reg := &fakeRegistry{booking: withStatus(scheduledBooking(), "confirmed")}
	svc, _ := newTestService(reg)

	resp, err := svc.MarkNoShow(context.Background(), "barber1", "bk1")
	require.NoError(t, err)
	assert.Equal(t, "no-show", resp.Status)

	_, err = svc.MarkNoShow(context.Background(), "client1", "bk1")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestListBookingsCachesPerCaller(t *testing.T) {
	reg := &fakeRegistry{bookings: []*registry.Booking{scheduledBooking()}}
	svc, _ := newTestService(reg)

	req := &models.ListBookingsRequest{UserID: "client1", View: models.ViewAll}

	_, err := svc.GetUserBookings(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.GetUserBookings(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, reg.listCalls)

	// The barber list for the same id is a different cache entry.
	_, err = svc.GetBarberBookings(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.listCalls)
}

func TestListBookingsViews(t *testing.T) {
	past := "2025-10-10"
	upcoming := scheduledBooking()
	done := withStatus(scheduledBooking(), "completed")
	done.ID = "bk2"
	done.ScheduledDate = &past

	reg := &fakeRegistry{bookings: []*registry.Booking{upcoming, done}}
	svc, _ := newTestService(reg)

	resp, err := svc.GetUserBookings(context.Background(), &models.ListBookingsRequest{
		UserID: "client1",
		View:   models.ViewUpcoming,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "bk1", resp.Bookings[0].ID)

	resp, err = svc.GetUserBookings(context.Background(), &models.ListBookingsRequest{
		UserID: "client1",
		View:   models.ViewHistory,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "bk2", resp.Bookings[0].ID)
}

func TestListBookingsTodayView(t *testing.T) {
	today := now.Format(domain.DateFormat)
	b := scheduledBooking()
	b.ScheduledDate = &today
	b.ScheduledTime = "18:00"

	reg := &fakeRegistry{bookings: []*registry.Booking{b, scheduledBooking()}}
	svc, _ := newTestService(reg)

	resp, err := svc.GetUserBookings(context.Background(), &models.ListBookingsRequest{
		UserID: "client1",
		View:   models.ViewToday,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	require.NotNil(t, resp.Bookings[0].ScheduledDate)
	assert.Equal(t, "2025-10-14", *resp.Bookings[0].ScheduledDate)
}

func TestListBookingsStatusFilter(t *testing.T) {
	confirmed := withStatus(scheduledBooking(), "confirmed")
	confirmed.ID = "bk2"

	reg := &fakeRegistry{bookings: []*registry.Booking{scheduledBooking(), confirmed}}
	svc, _ := newTestService(reg)

	resp, err := svc.GetUserBookings(context.Background(), &models.ListBookingsRequest{
		UserID: "client1",
		View:   models.ViewAll,
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "bk2", resp.Bookings[0].ID)

	_, err = svc.GetUserBookings(context.Background(), &models.ListBookingsRequest{
		UserID: "client1",
		Status: ptr.Ptr("bogus"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListBookingsBackendFailure(t *testing.T) {
	reg := &fakeRegistry{err: errors.New("down")}
	svc, _ := newTestService(reg)

	_, err := svc.GetUserBookings(context.Background(), &models.ListBookingsRequest{UserID: "client1"})
	assert.ErrorIs(t, err, ErrInternal)
}
