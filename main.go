package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swiftfleet/config"
	"swiftfleet/cron"
	"swiftfleet/database"
	bookingRepoPkg "swiftfleet/database/repository/booking"
	userRepoPkg "swiftfleet/database/repository/user"
	"swiftfleet/handlers"
	"swiftfleet/routes"
	"swiftfleet/services/booking"
	"swiftfleet/services/notification"
	"swiftfleet/services/payment"
	"swiftfleet/services/tasks"
	"swiftfleet/services/user"
	"swiftfleet/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Users: userService,
	}

	paymentService := &payment.DefaultPaymentService{
		Processor: payment.StripeProcessor{},
		Logger:    logger,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Notifier:  notificationService,
		Scheduler: tasks.NewAsynqScheduler(),
		Logger:    logger,
	}

	// Background worker for pickup reminders.
	cron.InitReminderWorker(notificationService)

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	adminHandler := handlers.NewAdminHandler(bookingService, userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Pricing and catalog endpoints.
		CalculatePriceHandler: handlers.CalculatePriceHandler,
		ListCarsHandler:       handlers.ListCarsHandler,
		GetCarHandler:         handlers.GetCarHandler,

		// Payment endpoints.
		CreatePaymentIntentHandler: paymentHandler.CreatePaymentIntentHandler,

		// Booking endpoints.
		SubmitBookingHandler: bookingHandler.SubmitBookingHandler,
		GetBookingHandler:    bookingHandler.GetBookingHandler,
		MyBookingsHandler:    bookingHandler.MyBookingsHandler,

		// Auth and profile endpoints.
		SignupHandler:         authHandler.SignupHandler,
		LoginHandler:          authHandler.LoginHandler,
		LogoutHandler:         authHandler.LogoutHandler,
		GetProfileHandler:     userHandler.GetProfileHandler,
		UpdateProfileHandler:  userHandler.UpdateProfileHandler,
		UpdateFCMTokenHandler: userHandler.UpdateFCMTokenHandler,

		// Admin endpoints.
		AdminListBookingsHandler: adminHandler.ListBookingsHandler,
		AdminListCarsHandler:     adminHandler.ListCarsHandler,
		AdminListUsersHandler:    adminHandler.ListUsersHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
