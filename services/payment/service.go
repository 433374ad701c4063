package payment

import (
	"context"
	"fmt"
	"strconv"

	"swiftfleet/models"
	"swiftfleet/services/pricing"

	"go.uber.org/zap"
)

// Charges are in paise: whole-rupee totals times the subunit factor.
const (
	chargeCurrency = "inr"
	subunitFactor  = 100
)

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Processor Processor
	Logger    *zap.Logger
}

// CreatePaymentIntent recomputes the total from the request inputs and creates
// a charge for it. The client never supplies an amount; the recomputation is
// what makes the displayed estimate and the captured charge agree.
func (s *DefaultPaymentService) CreatePaymentIntent(ctx context.Context, req IntentRequest) (string, models.QuoteResult, error) {
	quote, err := pricing.Compute(req.CarType, req.Days, req.DistanceKm, req.Weekend)
	if err != nil {
		return "", models.QuoteResult{}, err
	}

	metadata := map[string]string{
		"carType":   req.CarType,
		"days":      strconv.Itoa(req.Days),
		"distance":  strconv.Itoa(req.DistanceKm),
		"isWeekend": strconv.FormatBool(req.Weekend),
	}

	clientSecret, err := s.Processor.CreateIntent(ctx, int64(quote.TotalCost)*subunitFactor, chargeCurrency, metadata)
	if err != nil {
		s.Logger.Error("CreatePaymentIntent: processor call failed", zap.Error(err))
		return "", models.QuoteResult{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.Logger.Info("Payment intent created",
		zap.String("carType", req.CarType),
		zap.Int("totalCost", quote.TotalCost),
	)
	return clientSecret, quote, nil
}
