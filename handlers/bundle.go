package handlers

import (
	userRepoPkg "swiftfleet/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Pricing and catalog endpoints
	CalculatePriceHandler gin.HandlerFunc
	ListCarsHandler       gin.HandlerFunc
	GetCarHandler         gin.HandlerFunc

	// Payment endpoints
	CreatePaymentIntentHandler gin.HandlerFunc

	// Booking endpoints
	SubmitBookingHandler gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	MyBookingsHandler    gin.HandlerFunc

	// Auth and profile endpoints
	SignupHandler         gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	GetProfileHandler     gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc

	// Admin endpoints
	AdminListBookingsHandler gin.HandlerFunc
	AdminListCarsHandler     gin.HandlerFunc
	AdminListUsersHandler    gin.HandlerFunc
}
