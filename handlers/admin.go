package handlers

import (
	"net/http"

	"swiftfleet/services/booking"
	"swiftfleet/services/catalog"
	"swiftfleet/services/user"
	"swiftfleet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes read-only operational views for staff.
type AdminHandler struct {
	Bookings booking.BookingService
	Users    user.UserService
	Logger   *zap.Logger
}

func NewAdminHandler(bookings booking.BookingService, users user.UserService) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Users: users, Logger: utils.GetLogger()}
}

// ListBookingsHandler handles GET /api/admin/bookings.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.ListAll()
	if err != nil {
		h.Logger.Error("admin booking listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		h.Logger.Error("admin user listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// ListCarsHandler handles GET /api/admin/cars.
func (h *AdminHandler) ListCarsHandler(c *gin.Context) {
	cars := catalog.Cars()
	c.JSON(http.StatusOK, gin.H{"count": len(cars), "cars": cars})
}
