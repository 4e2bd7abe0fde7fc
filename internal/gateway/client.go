// Package gateway is the HTTP client for the external booking/auth
// service. Every non-2xx or transport failure degrades to an empty
// collection, a nil entity or a false result; upstream error bodies are
// never parsed.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/freshnest/bookingadmin/config"
	"github.com/freshnest/bookingadmin/internal/entity"
	"github.com/sirupsen/logrus"
)

type BookingGateway interface {
	GetAllBookings(ctx context.Context) []entity.Booking
	GetBookingByID(ctx context.Context, id int64) *entity.Booking
	GetBookingByNumber(ctx context.Context, number string) *entity.Booking
	CreateBooking(ctx context.Context, details *entity.BookingDetails) *entity.Booking
	UpdateBookingStatus(ctx context.Context, id int64, status entity.BookingStatus) bool
	DeleteBooking(ctx context.Context, id int64) bool
}

type AuthGateway interface {
	Login(ctx context.Context, password string) LoginResult
	GetPasswords(ctx context.Context) []entity.AdminPassword
	AddPassword(ctx context.Context, password string) *entity.AdminPassword
	DeletePassword(ctx context.Context, id int64) bool
}

// LoginResult is the upstream login response body.
type LoginResult struct {
	Success bool   `json:"success"`
	Name    string `json:"name,omitempty"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(cfg *config.GatewayConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// do issues a request and reports whether a 2xx response arrived. When
// out is non-nil the response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) bool {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			logrus.Warnf("gateway: encode %s %s: %v", method, path, err)
			return false
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		logrus.Warnf("gateway: build %s %s: %v", method, path, err)
		return false
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logrus.Warnf("gateway: %s %s: %v", method, path, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.Warnf("gateway: %s %s: unexpected status %s", method, path, resp.Status)
		return false
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			logrus.Warnf("gateway: decode %s %s: %v", method, path, err)
			return false
		}
	}
	return true
}
