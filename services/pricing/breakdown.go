package pricing

import (
	"fmt"

	"swiftfleet/models"
)

// Breakdown carries the human-readable line items shown alongside a quote.
type Breakdown struct {
	BaseRate      string `json:"baseRate"`
	ExtraDistance string `json:"extraDistance"`
	Total         string `json:"total"`
}

// BuildBreakdown formats a quote result into display lines using the
// process's currency symbol, e.g. "₹1800 × 2 days = ₹3600".
func BuildBreakdown(res models.QuoteResult, symbol string) Breakdown {
	b := Breakdown{
		BaseRate: fmt.Sprintf("%s%d × %d days = %s%d", symbol, res.DailyRate, res.Days, symbol, res.BaseCost),
		Total:    fmt.Sprintf("%s%d", symbol, res.TotalCost),
	}
	if res.ExtraDistanceKm > 0 {
		b.ExtraDistance = fmt.Sprintf("%s%d × %d km = %s%d", symbol, OverageRatePerKm, res.ExtraDistanceKm, symbol, res.ExtraDistanceCharge)
	} else {
		b.ExtraDistance = "No extra charges"
	}
	return b
}
