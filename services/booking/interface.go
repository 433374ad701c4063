package booking

import (
	"context"
	"time"

	bookingRepo "swiftfleet/database/repository/booking"
	"swiftfleet/models"
	"swiftfleet/services/notification"

	"go.uber.org/zap"
)

// SubmissionInput carries a booking form submission. Dates are "YYYY-MM-DD".
type SubmissionInput struct {
	UserID         string `json:"-"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CarType        string `json:"carType"`
	PickupDate     string `json:"pickupDate"`
	ReturnDate     string `json:"returnDate"`
	PickupLocation string `json:"pickupLocation"`
	DropLocation   string `json:"dropLocation"`
}

// ReminderScheduler enqueues a pickup reminder to fire at a later time.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// BookingService defines booking submission and retrieval operations.
type BookingService interface {
	Submit(ctx context.Context, input SubmissionInput) (*models.Booking, error)
	GetByReference(ref string) (*models.Booking, error)
	ListForUser(userID string) ([]models.Booking, error)
	ListAll() ([]models.Booking, error)
}

// DefaultBookingService is the production implementation. Notifier and
// Scheduler are best-effort collaborators; the booking stands even when a
// push or reminder cannot be delivered.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Notifier  notification.NotificationService
	Scheduler ReminderScheduler
	Logger    *zap.Logger

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
