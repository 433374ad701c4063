package handlers

import (
	"net/http"

	"swiftfleet/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes payment intent creation.
type PaymentHandler struct {
	Payments payment.PaymentService
	Logger   *zap.Logger
}

func NewPaymentHandler(payments payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Logger: logger}
}

// CreatePaymentIntentHandler handles POST /api/payments/intent. The total is
// recomputed from the inputs; a client-supplied amount is never accepted.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req QuoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input parameters for payment calculation"})
		return
	}

	clientSecret, _, err := h.Payments.CreatePaymentIntent(c.Request.Context(), payment.IntentRequest{
		CarType:    req.CarType,
		Days:       req.Days,
		DistanceKm: req.Distance,
		Weekend:    req.IsWeekend,
	})
	if err != nil {
		if isPricingError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Error creating payment intent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
