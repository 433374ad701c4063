package bookingRepo

import "swiftfleet/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByReference retrieves a booking by its reference.
	GetByReference(ref string) (*models.Booking, error)
	// GetByUser retrieves all bookings made by a user, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetByEmail retrieves all bookings submitted under an email, newest first.
	GetByEmail(email string) ([]models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// UpdateStatus transitions a booking to a new status.
	UpdateStatus(ref, status string) error
}
