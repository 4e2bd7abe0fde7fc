package service

import (
	"context"

	"github.com/freshnest/bookingadmin/internal/entity"
)

// AuthService определяет интерфейс для операций аутентификации администратора
type AuthService interface {
	// Session operations
	Login(ctx context.Context, sid, password string) bool
	Logout(ctx context.Context, sid string)
	Session(ctx context.Context, sid string) entity.AdminSession

	// Password set management
	AddPassword(ctx context.Context, sid, password string) bool
	DeletePassword(ctx context.Context, sid string, id int64) bool
	Passwords(sid string) []entity.AdminPassword
}

// BookingService defines the interface for the booking workflow
type BookingService interface {
	// Admin operations
	ListBookings(ctx context.Context) []entity.Booking
	CachedBookings() []entity.Booking
	UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) bool
	DeleteBooking(ctx context.Context, id int64) bool

	// Customer operations
	CreateBooking(ctx context.Context, details *entity.BookingDetails) *entity.Booking
	GetBooking(ctx context.Context, id int64) *entity.Booking
	GetBookingByNumber(ctx context.Context, number string) *entity.Booking
}

// CatalogService exposes the static cleaning-service catalog
type CatalogService interface {
	Services() []entity.CleaningService
	ServiceTitle(id string) string
}
