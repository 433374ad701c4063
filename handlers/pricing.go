package handlers

import (
	"errors"
	"net/http"

	"swiftfleet/config"
	"swiftfleet/models"
	"swiftfleet/services/pricing"

	"github.com/gin-gonic/gin"
)

// QuoteInput is the wire shape shared by the quote and payment-intent
// endpoints: the client pre-computes days and the weekend flag.
type QuoteInput struct {
	CarType   string `json:"carType"`
	Days      int    `json:"days"`
	Distance  int    `json:"distance"`
	IsWeekend bool   `json:"isWeekend"`
}

type quoteCalculation struct {
	models.QuoteResult
	Breakdown pricing.Breakdown `json:"breakdown"`
}

// isPricingError reports whether err is one of the pricing engine's
// input-validation failures, all of which map to a client error.
func isPricingError(err error) bool {
	var catErr pricing.InvalidCategoryError
	var rangeErr pricing.InvalidDateRangeError
	var distErr pricing.InvalidDistanceError
	return errors.As(err, &catErr) || errors.As(err, &rangeErr) || errors.As(err, &distErr)
}

// CalculatePriceHandler handles POST /api/pricing/quote.
func CalculatePriceHandler(c *gin.Context) {
	var req QuoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input parameters"})
		return
	}

	result, err := pricing.Compute(req.CarType, req.Days, req.Distance, req.IsWeekend)
	if err != nil {
		if isPricingError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Calculation failed. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"calculation": quoteCalculation{
			QuoteResult: result,
			Breakdown:   pricing.BuildBreakdown(result, config.AppConfig.CurrencySymbol),
		},
	})
}
