package bookingRepo

import (
	"fmt"
	"time"

	"swiftfleet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByReference retrieves a booking by its reference.
func (r *MongoBookingRepo) GetByReference(ref string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"reference": ref}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", ref, err)
	}
	return &booking, nil
}

// UpdateStatus transitions a booking to a new status.
func (r *MongoBookingRepo) UpdateStatus(ref, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"reference": ref}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", ref, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", ref)
	}
	return nil
}
