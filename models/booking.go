package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a submitted rental booking record.
type Booking struct {
	Reference      string    `bson:"reference" json:"reference"` // e.g. "SF1721476301ABCD"
	UserID         string    `bson:"user_id,omitempty" json:"userId,omitempty"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone" json:"phone"`
	CarType        string    `bson:"car_type" json:"carType"`
	PickupDate     string    `bson:"pickup_date" json:"pickupDate"` // "YYYY-MM-DD"
	ReturnDate     string    `bson:"return_date" json:"returnDate"` // "YYYY-MM-DD"
	PickupLocation string    `bson:"pickup_location" json:"pickupLocation"`
	DropLocation   string    `bson:"drop_location,omitempty" json:"dropLocation,omitempty"`
	Days           int       `bson:"days" json:"days"`
	DailyRate      int       `bson:"daily_rate" json:"dailyRate"`
	TotalAmount    int       `bson:"total_amount" json:"totalAmount"` // server-computed, whole rupees
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
