package booking

import (
	"context"
	"fmt"
	"time"

	"swiftfleet/models"
	"swiftfleet/services/pricing"

	"go.uber.org/zap"
)

// reminderLead is how long before pickup the reminder push fires.
const reminderLead = 24 * time.Hour

// Submit validates the submission, recomputes the price server-side from the
// dates, and persists the booking with the server-computed total. Any total
// the client displayed is ignored; the recomputation closes the tamper window
// between quote display and submission.
func (s *DefaultBookingService) Submit(ctx context.Context, input SubmissionInput) (*models.Booking, error) {
	pickup, ret, err := input.validate()
	if err != nil {
		return nil, err
	}

	now := s.now()
	// No distance is collected at booking time, so the overage charge is
	// zero and the total is the base cost.
	quote, err := pricing.ComputeForDates(models.QuoteRequest{
		CarType:    input.CarType,
		PickupDate: pickup,
		ReturnDate: ret,
	}, now)
	if err != nil {
		return nil, err
	}

	bk := &models.Booking{
		Reference:      NewReference(now),
		UserID:         input.UserID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		CarType:        input.CarType,
		PickupDate:     input.PickupDate,
		ReturnDate:     input.ReturnDate,
		PickupLocation: input.PickupLocation,
		DropLocation:   input.DropLocation,
		Days:           quote.Days,
		DailyRate:      quote.DailyRate,
		TotalAmount:    quote.TotalCost,
		Status:         models.BookingStatusPending,
	}

	if err := s.Repo.Create(bk); err != nil {
		s.Logger.Error("Submit: failed to persist booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.Logger.Info("Booking created",
		zap.String("reference", bk.Reference),
		zap.String("carType", bk.CarType),
		zap.Int("totalAmount", bk.TotalAmount),
	)

	s.notifyConfirmation(ctx, bk)
	s.scheduleReminder(bk, pickup)

	return bk, nil
}

func (s *DefaultBookingService) notifyConfirmation(ctx context.Context, bk *models.Booking) {
	if s.Notifier == nil || bk.UserID == "" {
		return
	}
	body := fmt.Sprintf("Your booking %s is confirmed for %s. We will contact you within 30 minutes.", bk.Reference, bk.PickupDate)
	data := map[string]string{
		"bookingRef": bk.Reference,
		"status":     bk.Status,
	}
	if err := s.Notifier.SendUserPush(ctx, bk.UserID, "Booking received", body, data); err != nil {
		s.Logger.Warn("Submit: confirmation push failed", zap.String("reference", bk.Reference), zap.Error(err))
	}
}

func (s *DefaultBookingService) scheduleReminder(bk *models.Booking, pickup time.Time) {
	if s.Scheduler == nil || bk.UserID == "" {
		return
	}
	fireAt := pickup.Add(-reminderLead)
	if !fireAt.After(s.now()) {
		return
	}
	payload := models.ReminderPayload{
		BookingRef: bk.Reference,
		UserID:     bk.UserID,
		Title:      "Pickup tomorrow",
		Body:       fmt.Sprintf("Your %s is ready for pickup on %s at %s.", bk.CarType, bk.PickupDate, bk.PickupLocation),
		FireDate:   fireAt.Format(time.RFC3339),
	}
	if err := s.Scheduler.ScheduleReminder(payload, fireAt); err != nil {
		s.Logger.Warn("Submit: failed to schedule pickup reminder", zap.String("reference", bk.Reference), zap.Error(err))
	}
}

// GetByReference retrieves a booking by its reference.
func (s *DefaultBookingService) GetByReference(ref string) (*models.Booking, error) {
	bk, err := s.Repo.GetByReference(ref)
	if err != nil {
		return nil, err
	}
	if bk == nil {
		return nil, fmt.Errorf("booking %s not found", ref)
	}
	return bk, nil
}

// ListForUser retrieves the user's bookings, newest first.
func (s *DefaultBookingService) ListForUser(userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(userID)
}

// ListAll retrieves all bookings, newest first.
func (s *DefaultBookingService) ListAll() ([]models.Booking, error) {
	return s.Repo.GetAll()
}
