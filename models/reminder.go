package models

// ReminderPayload is the asynq task payload for a pickup reminder push.
type ReminderPayload struct {
	BookingRef string `json:"bookingRef"`
	UserID     string `json:"userId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"` // RFC3339
}
