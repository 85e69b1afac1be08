package booking

import (
	"errors"
	"net/http"
	"strconv"

	"fitstudio/internal/api"
	"fitstudio/internal/logger"
	"fitstudio/internal/validation"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Book a class
// @Description  Creates a booking for the given fitness class if slots remain.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.BookRequest true "Booking payload"
// @Success      201 {object} booking.BookingCreatedResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /book/ [post]
func (h *Handler) BookClass(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Booking request is not valid: %v", err)
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
			Message: "Booking request is not valid.",
			Errors:  validation.FieldErrors(err),
		})
		return
	}

	booking, err := h.service.Book(c.Request.Context(), req)
	if err != nil {
		if fields, ok := bookingErrorFields(err); ok {
			logger.Errorf("Booking request is not valid: %v", err)
			c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
				Message: "Booking request is not valid.",
				Errors:  fields,
			})
			return
		}
		logger.Errorf("Error occurred during booking: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while processing your booking."})
		return
	}

	logger.Infof("Booking successful for class ID %d by %s", booking.FitnessClassID, booking.ClientEmail)
	c.JSON(http.StatusCreated, BookingCreatedResponse{
		Message:   "Booking successful.",
		BookingID: booking.ID,
	})
}

// @Summary      List bookings by email
// @Description  Returns bookings made by the given client email, case-insensitive.
// @Tags         bookings
// @Produce      json
// @Param        email query string true "Client email"
// @Success      200 {object} booking.BookingListResponse
// @Failure      400 {object} api.MessageResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings/ [get]
func (h *Handler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		logger.Warn("Missing 'email' parameter in booking list request")
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "Email parameter is required."})
		return
	}

	bookings, err := h.service.FindByEmail(c.Request.Context(), email)
	if err != nil {
		logger.Errorf("Error occurred fetching bookings for email %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while retrieving bookings."})
		return
	}

	logger.Infof("Returned %d bookings for email %s", len(bookings), email)
	c.JSON(http.StatusOK, BookingListResponse{
		Message: "Bookings fetched successfully.",
		Count:   len(bookings),
		Data:    bookings,
	})
}

// @Summary      Booking stats for a class
// @Description  Returns how many bookings a class has taken and how many slots remain.
// @Tags         admin
// @Produce      json
// @Param        classID path int true "Fitness class ID"
// @Success      200 {object} booking.ClassBookingStats
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/classes/{classID}/bookings [get]
func (h *Handler) ClassStats(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	stats, err := h.service.ClassStats(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, ErrClassNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Fitness class not found."})
			return
		}
		logger.Errorf("Error occurred fetching stats for class %d: %v", classID, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while retrieving class stats."})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// bookingErrorFields maps domain validation failures onto the field they
// relate to. Anything else is treated as a server error.
func bookingErrorFields(err error) (map[string]string, bool) {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return map[string]string{"client_email": "Please enter a valid email address."}, true
	case errors.Is(err, ErrClassNotFound):
		return map[string]string{"fitness_class": "Fitness class not found."}, true
	case errors.Is(err, ErrNoSlotsAvailable):
		return map[string]string{"fitness_class": "No available slots for this class."}, true
	default:
		return nil, false
	}
}
