package models

import "time"

// QuoteRequest carries the inputs of a price computation on the date-shaped
// path (booking submission). The quote and payment endpoints receive a
// pre-computed day count instead and never see dates.
type QuoteRequest struct {
	CarType    string    `json:"carType"`
	PickupDate time.Time `json:"pickupDate"`
	ReturnDate time.Time `json:"returnDate"`
	DistanceKm int       `json:"distance"` // optional, 0 when omitted
}

// QuoteResult is a complete price breakdown. All amounts are whole rupees.
// It is derived entirely from the request and the rate table; it is never
// cached or persisted by the pricing engine itself.
type QuoteResult struct {
	CarType             string `json:"carType"`
	Days                int    `json:"days"`
	DailyRate           int    `json:"dailyRate"`
	BaseCost            int    `json:"baseCost"`
	ExtraDistanceKm     int    `json:"extraKm"`
	ExtraDistanceCharge int    `json:"extraKmCharge"`
	TotalCost           int    `json:"totalCost"`
	Savings             int    `json:"savings"` // vs the list rate, display only
}
