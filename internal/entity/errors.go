package entity

import "errors"

var (
	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
