package routes

import (
	"net/http"
	"time"

	"swiftfleet/handlers"
	"swiftfleet/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, login, and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo, false))
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterPricingRoutes registers the quote endpoint.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.POST("/quote", hb.CalculatePriceHandler)
	}
}

// RegisterCarRoutes registers the public car catalog endpoints.
func RegisterCarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cars")
	{
		api.GET("", hb.ListCarsHandler)
		api.GET("/:id", hb.GetCarHandler)
	}
}

// RegisterPaymentRoutes registers payment intent creation.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/intent", hb.CreatePaymentIntentHandler)
	}
}

// RegisterBookingRoutes sets up the booking endpoints. Submission accepts
// anonymous requests; retrieval requires authentication.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", middleware.JWTAuthUserMiddleware(hb.UserRepo, true), hb.SubmitBookingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo, false))
		protected.GET("", hb.MyBookingsHandler)
		protected.GET("/:reference", hb.GetBookingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/bookings", hb.AdminListBookingsHandler)
		adminGroup.GET("/cars", hb.AdminListCarsHandler)
		adminGroup.GET("/users", hb.AdminListUsersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SwiftFleet"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterCarRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
