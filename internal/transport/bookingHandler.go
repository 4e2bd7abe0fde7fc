package transport

import (
	"net/http"
	"strconv"

	"github.com/freshnest/bookingadmin/internal/entity"
	"github.com/freshnest/bookingadmin/internal/service"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// GetAllBookings возвращает все бронирования для административного просмотра
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings := h.bookingService.ListBookings(c.Request.Context())

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
		Meta: map[string]interface{}{
			"total": len(bookings),
		},
	})
}

// UpdateStatus transitions a booking into the status named by the
// "status" query parameter.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid booking ID",
		})
		return
	}

	status, err := entity.ParseBookingStatus(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid booking status",
		})
		return
	}

	if !h.bookingService.UpdateStatus(c.Request.Context(), id, status) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "Failed to update booking status",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Booking status updated",
		Meta: map[string]interface{}{
			"booking_id": id,
			"status":     status,
		},
	})
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid booking ID",
		})
		return
	}

	if !h.bookingService.DeleteBooking(c.Request.Context(), id) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "Failed to delete the booking. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Booking deleted",
		Meta: map[string]interface{}{
			"booking_id": id,
		},
	})
}

// CreateBooking принимает заявку клиента на уборку
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var details entity.BookingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid request body: " + err.Error(),
		})
		return
	}

	booking := h.bookingService.CreateBooking(c.Request.Context(), &details)
	if booking == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "Failed to create booking",
		})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid booking ID",
		})
		return
	}

	booking := h.bookingService.GetBooking(c.Request.Context(), id)
	if booking == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Success: false,
			Error:   "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetBookingByNumber ищет бронирование по человекочитаемому номеру
func (h *BookingHandler) GetBookingByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid booking number",
		})
		return
	}

	booking := h.bookingService.GetBookingByNumber(c.Request.Context(), number)
	if booking == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Success: false,
			Error:   "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, booking)
}
