package service

import (
	"context"
	"testing"

	"github.com/freshnest/bookingadmin/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingGateway struct {
	bookings []entity.Booking
	booking  *entity.Booking
	created  *entity.Booking
	updateOK bool
	deleteOK bool

	updateCalls int
}

func (f *fakeBookingGateway) GetAllBookings(_ context.Context) []entity.Booking {
	return f.bookings
}

func (f *fakeBookingGateway) GetBookingByID(_ context.Context, _ int64) *entity.Booking {
	return f.booking
}

func (f *fakeBookingGateway) GetBookingByNumber(_ context.Context, _ string) *entity.Booking {
	return f.booking
}

func (f *fakeBookingGateway) CreateBooking(_ context.Context, _ *entity.BookingDetails) *entity.Booking {
	return f.created
}

func (f *fakeBookingGateway) UpdateBookingStatus(_ context.Context, _ int64, _ entity.BookingStatus) bool {
	f.updateCalls++
	return f.updateOK
}

func (f *fakeBookingGateway) DeleteBooking(_ context.Context, _ int64) bool {
	return f.deleteOK
}

func testBookings() []entity.Booking {
	return []entity.Booking{
		{ID: 1, BookingNumber: "BK-001", Date: entity.NewDateOnly(2024, 1, 1), Status: entity.BookingStatusPending},
		{ID: 2, BookingNumber: "BK-002", Date: entity.NewDateOnly(2024, 3, 1), Status: entity.BookingStatusPending},
		{ID: 3, BookingNumber: "BK-003", Date: entity.NewDateOnly(2024, 2, 1), Status: entity.BookingStatusApproved},
	}
}

func newTestBookingService(gw *fakeBookingGateway) BookingService {
	return NewBookingService(gw, NewCatalogService(nil), nil)
}

func TestListBookingsSortedByDateDescending(t *testing.T) {
	gw := &fakeBookingGateway{bookings: testBookings()}
	svc := newTestBookingService(gw)

	list := svc.ListBookings(context.Background())

	require.Len(t, list, 3)
	assert.Equal(t, "BK-002", list[0].BookingNumber)
	assert.Equal(t, "BK-003", list[1].BookingNumber)
	assert.Equal(t, "BK-001", list[2].BookingNumber)
}

func TestListBookingsReplacesCache(t *testing.T) {
	gw := &fakeBookingGateway{bookings: testBookings()}
	svc := newTestBookingService(gw)

	svc.ListBookings(context.Background())
	require.Len(t, svc.CachedBookings(), 3)

	gw.bookings = nil
	svc.ListBookings(context.Background())
	assert.Empty(t, svc.CachedBookings())
}

func TestUpdateStatusMutatesOnlyTarget(t *testing.T) {
	gw := &fakeBookingGateway{bookings: testBookings(), updateOK: true}
	svc := newTestBookingService(gw)

	ctx := context.Background()
	svc.ListBookings(ctx)

	require.True(t, svc.UpdateStatus(ctx, 2, entity.BookingStatusApproved))

	for _, b := range svc.CachedBookings() {
		if b.ID == 2 {
			assert.Equal(t, entity.BookingStatusApproved, b.Status)
		} else {
			assert.NotEqual(t, int64(2), b.ID)
		}
	}

	// The untouched entries keep their original status.
	cached := svc.CachedBookings()
	assert.Equal(t, entity.BookingStatusPending, findBooking(t, cached, 1).Status)
	assert.Equal(t, entity.BookingStatusApproved, findBooking(t, cached, 3).Status)
}

func TestUpdateStatusUpstreamFailureLeavesCache(t *testing.T) {
	gw := &fakeBookingGateway{bookings: testBookings(), updateOK: false}
	svc := newTestBookingService(gw)

	ctx := context.Background()
	svc.ListBookings(ctx)

	assert.False(t, svc.UpdateStatus(ctx, 2, entity.BookingStatusRejected))
	assert.Equal(t, entity.BookingStatusPending, findBooking(t, svc.CachedBookings(), 2).Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	gw := &fakeBookingGateway{updateOK: true}
	svc := newTestBookingService(gw)

	assert.False(t, svc.UpdateStatus(context.Background(), 1, entity.BookingStatus("Done")))
	assert.Equal(t, 0, gw.updateCalls, "invalid status must never reach the network")
}

func TestDeleteBooking(t *testing.T) {
	tests := []struct {
		name      string
		upstream  bool
		wantOK    bool
		wantCount int
	}{
		{name: "upstream confirms", upstream: true, wantOK: true, wantCount: 2},
		{name: "upstream fails", upstream: false, wantOK: false, wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeBookingGateway{bookings: testBookings(), deleteOK: tt.upstream}
			svc := newTestBookingService(gw)

			ctx := context.Background()
			svc.ListBookings(ctx)

			assert.Equal(t, tt.wantOK, svc.DeleteBooking(ctx, 2))

			cached := svc.CachedBookings()
			assert.Len(t, cached, tt.wantCount)
			for _, b := range cached {
				if !tt.upstream {
					break
				}
				assert.NotEqual(t, int64(2), b.ID)
			}
		})
	}
}

func TestCreateBookingNilOnUpstreamFailure(t *testing.T) {
	gw := &fakeBookingGateway{created: nil}
	svc := newTestBookingService(gw)

	assert.Nil(t, svc.CreateBooking(context.Background(), &entity.BookingDetails{Name: "Bob"}))
}

func TestCreateBookingReturnsUpstreamEntity(t *testing.T) {
	created := &entity.Booking{ID: 10, BookingNumber: "BK-010", Status: entity.BookingStatusPending}
	gw := &fakeBookingGateway{created: created}
	svc := newTestBookingService(gw)

	got := svc.CreateBooking(context.Background(), &entity.BookingDetails{Name: "Bob"})
	require.NotNil(t, got)
	assert.Equal(t, "BK-010", got.BookingNumber)
	assert.Equal(t, entity.BookingStatusPending, got.Status)
}

func findBooking(t *testing.T, list []entity.Booking, id int64) entity.Booking {
	t.Helper()
	for _, b := range list {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("booking %d not found", id)
	return entity.Booking{}
}
