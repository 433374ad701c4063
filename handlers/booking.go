package handlers

import (
	"errors"
	"net/http"

	"swiftfleet/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking submission and retrieval.
type BookingHandler struct {
	Bookings booking.BookingService
	Logger   *zap.Logger
}

func NewBookingHandler(bookings booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Logger: logger}
}

// SubmitBookingHandler handles POST /api/bookings.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	var input booking.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if userID, ok := c.Get("userID"); ok {
		input.UserID, _ = userID.(string)
	}

	bk, err := h.Bookings.Submit(c.Request.Context(), input)
	if err != nil {
		var vErr booking.ValidationError
		if errors.As(err, &vErr) || isPricingError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": gin.H{
			"reference":   bk.Reference,
			"totalAmount": bk.TotalAmount,
			"days":        bk.Days,
			"dailyRate":   bk.DailyRate,
			"status":      bk.Status,
		},
		"message": "Booking created successfully. We will contact you within 30 minutes.",
	})
}

// GetBookingHandler handles GET /api/bookings/:reference.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	ref := c.Param("reference")
	bk, err := h.Bookings.GetByReference(ref)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// MyBookingsHandler handles GET /api/bookings for the authenticated user.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	userID, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	bookings, err := h.Bookings.ListForUser(userID.(string))
	if err != nil {
		h.Logger.Error("Booking fetch error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
