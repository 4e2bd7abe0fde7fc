package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/freshnest/bookingadmin/internal/entity"
	"github.com/freshnest/bookingadmin/internal/gateway"
	"github.com/freshnest/bookingadmin/pkg/telegram"
	"github.com/sirupsen/logrus"
)

type bookingService struct {
	gateway  gateway.BookingGateway
	catalog  CatalogService
	notifier *telegram.Notifier

	// Read-through cache of the admin booking view, reconciled only
	// after the upstream service acknowledges a mutation.
	mu       sync.Mutex
	bookings []entity.Booking
}

// NewBookingService создает новый экземпляр BookingService
func NewBookingService(gw gateway.BookingGateway, catalog CatalogService, notifier *telegram.Notifier) BookingService {
	return &bookingService{
		gateway:  gw,
		catalog:  catalog,
		notifier: notifier,
	}
}

// ListBookings fetches the full booking list from the upstream service,
// sorted by date descending (most recent first), and replaces the
// cached view.
func (s *bookingService) ListBookings(ctx context.Context) []entity.Booking {
	bookings := s.gateway.GetAllBookings(ctx)

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Date.After(bookings[j].Date.Time)
	})

	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()

	return s.snapshot()
}

// CachedBookings returns the current reconciled view without contacting
// the upstream service.
func (s *bookingService) CachedBookings() []entity.Booking {
	return s.snapshot()
}

// UpdateStatus transitions a booking between any two of the three
// states. The cached entry is mutated only after the upstream service
// confirms; on failure the view is left untouched.
func (s *bookingService) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) bool {
	if _, err := entity.ParseBookingStatus(string(status)); err != nil {
		return false
	}

	if !s.gateway.UpdateBookingStatus(ctx, id, status) {
		return false
	}

	s.mu.Lock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
		}
	}
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{"booking": id, "status": status}).Info("Booking status updated")
	return true
}

// DeleteBooking removes a booking upstream and, on success, drops it
// from the cached view.
func (s *bookingService) DeleteBooking(ctx context.Context, id int64) bool {
	if !s.gateway.DeleteBooking(ctx, id) {
		return false
	}

	s.mu.Lock()
	filtered := make([]entity.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	s.bookings = filtered
	s.mu.Unlock()

	logrus.WithField("booking", id).Info("Booking deleted")
	return true
}

// CreateBooking submits a customer booking. Status is assigned upstream
// (new bookings start Pending).
func (s *bookingService) CreateBooking(ctx context.Context, details *entity.BookingDetails) *entity.Booking {
	created := s.gateway.CreateBooking(ctx, details)
	if created == nil {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"booking": created.ID,
		"number":  created.BookingNumber,
		"service": created.Service,
	}).Info("Booking created")

	if s.notifier != nil {
		go s.sendBookingCreatedNotification(created)
	}

	return created
}

// sendBookingCreatedNotification отправляет уведомление о новом бронировании
func (s *bookingService) sendBookingCreatedNotification(booking *entity.Booking) {
	message := fmt.Sprintf(
		"🧹 New booking received!\n\n"+
			"Booking #: %s\n"+
			"Service: %s\n"+
			"Customer: %s\n"+
			"Date: %s at %s\n"+
			"Address: %s",
		booking.BookingNumber,
		s.catalog.ServiceTitle(booking.Service),
		booking.Name,
		booking.Date.String(),
		booking.Time,
		booking.Address,
	)

	if err := s.notifier.Send(message); err != nil {
		logrus.Errorf("telegram notification for booking %d: %v", booking.ID, err)
	}
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) *entity.Booking {
	return s.gateway.GetBookingByID(ctx, id)
}

func (s *bookingService) GetBookingByNumber(ctx context.Context, number string) *entity.Booking {
	return s.gateway.GetBookingByNumber(ctx, number)
}

func (s *bookingService) snapshot() []entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := make([]entity.Booking, len(s.bookings))
	copy(view, s.bookings)
	return view
}
