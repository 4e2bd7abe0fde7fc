package entity

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusApproved BookingStatus = "Approved"
	BookingStatusRejected BookingStatus = "Rejected"
)

// ParseBookingStatus maps a raw status string onto one of the three
// known booking states.
func ParseBookingStatus(status string) (BookingStatus, error) {
	switch status {
	case "Pending":
		return BookingStatusPending, nil
	case "Approved":
		return BookingStatusApproved, nil
	case "Rejected":
		return BookingStatusRejected, nil
	default:
		return "", ErrInvalidBookingStatus
	}
}

// Booking mirrors the upstream booking record. Field names follow the
// upstream JSON contract.
type Booking struct {
	ID            int64         `json:"id"`
	BookingNumber string        `json:"bookingNumber"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	Service       string        `json:"service"`
	Date          DateOnly      `json:"date"`
	Time          string        `json:"time"`
	Status        BookingStatus `json:"status"`
}

// BookingDetails is the customer-facing creation payload. ID,
// bookingNumber and status are assigned upstream.
type BookingDetails struct {
	Name    string   `json:"name" binding:"required"`
	Email   string   `json:"email" binding:"required,email"`
	Phone   string   `json:"phone" binding:"required"`
	Address string   `json:"address" binding:"required"`
	Service string   `json:"service" binding:"required"`
	Date    DateOnly `json:"date" binding:"required"`
	Time    string   `json:"time" binding:"required"`
}
