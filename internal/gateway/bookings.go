package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/freshnest/bookingadmin/internal/entity"
)

func (c *Client) GetAllBookings(ctx context.Context) []entity.Booking {
	var bookings []entity.Booking
	if !c.do(ctx, http.MethodGet, "/bookings", nil, &bookings) {
		return []entity.Booking{}
	}
	return bookings
}

func (c *Client) GetBookingByID(ctx context.Context, id int64) *entity.Booking {
	var booking entity.Booking
	if !c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", id), nil, &booking) {
		return nil
	}
	return &booking
}

func (c *Client) GetBookingByNumber(ctx context.Context, number string) *entity.Booking {
	var booking entity.Booking
	path := "/bookings/number/" + url.PathEscape(number)
	if !c.do(ctx, http.MethodGet, path, nil, &booking) {
		return nil
	}
	return &booking
}

func (c *Client) CreateBooking(ctx context.Context, details *entity.BookingDetails) *entity.Booking {
	var booking entity.Booking
	if !c.do(ctx, http.MethodPost, "/bookings", details, &booking) {
		return nil
	}
	return &booking
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id int64, status entity.BookingStatus) bool {
	path := fmt.Sprintf("/bookings/%d/status?status=%s", id, url.QueryEscape(string(status)))
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

func (c *Client) DeleteBooking(ctx context.Context, id int64) bool {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, nil)
}
