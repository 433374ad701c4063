package payment

import (
	"context"

	"swiftfleet/models"
)

// Processor creates a charge intent with the external payment processor and
// returns the opaque client-side handle for it.
type Processor interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (clientSecret string, err error)
}

// IntentRequest mirrors the quote endpoint's input shape: the caller supplies
// a pre-computed day count and weekend flag, never a total.
type IntentRequest struct {
	CarType    string `json:"carType"`
	Days       int    `json:"days"`
	DistanceKm int    `json:"distance"`
	Weekend    bool   `json:"isWeekend"`
}

// PaymentService recomputes the authoritative total and creates the charge.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req IntentRequest) (string, models.QuoteResult, error)
}
