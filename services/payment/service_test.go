package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swiftfleet/services/pricing"
)

type fakeProcessor struct {
	calls    int
	amount   int64
	currency string
	metadata map[string]string
	secret   string
	err      error
}

func (f *fakeProcessor) CreateIntent(_ context.Context, amountMinor int64, currency string, metadata map[string]string) (string, error) {
	f.calls++
	f.amount = amountMinor
	f.currency = currency
	f.metadata = metadata
	return f.secret, f.err
}

func TestCreatePaymentIntent(t *testing.T) {
	proc := &fakeProcessor{secret: "pi_secret_123"}
	svc := &DefaultPaymentService{Processor: proc, Logger: zap.NewNop()}

	secret, quote, err := svc.CreatePaymentIntent(context.Background(), IntentRequest{
		CarType:    pricing.CategoryFiveSeater,
		Days:       2,
		DistanceKm: 600,
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_secret_123", secret)
	assert.Equal(t, 5100, quote.TotalCost)

	// Charge amount is the recomputed total in paise, never client-supplied.
	assert.Equal(t, int64(510000), proc.amount)
	assert.Equal(t, "inr", proc.currency)
	assert.Equal(t, map[string]string{
		"carType":   "5-seater",
		"days":      "2",
		"distance":  "600",
		"isWeekend": "false",
	}, proc.metadata)
}

func TestCreatePaymentIntentInvalidInput(t *testing.T) {
	proc := &fakeProcessor{}
	svc := &DefaultPaymentService{Processor: proc, Logger: zap.NewNop()}

	_, _, err := svc.CreatePaymentIntent(context.Background(), IntentRequest{
		CarType: "4-seater",
		Days:    2,
	})
	var catErr pricing.InvalidCategoryError
	require.ErrorAs(t, err, &catErr)
	assert.Zero(t, proc.calls, "processor must not be called for invalid input")

	_, _, err = svc.CreatePaymentIntent(context.Background(), IntentRequest{
		CarType: pricing.CategoryFiveSeater,
		Days:    0,
	})
	var rangeErr pricing.InvalidDateRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Zero(t, proc.calls)
}

func TestCreatePaymentIntentProcessorFailure(t *testing.T) {
	proc := &fakeProcessor{err: errors.New("card network down")}
	svc := &DefaultPaymentService{Processor: proc, Logger: zap.NewNop()}

	_, _, err := svc.CreatePaymentIntent(context.Background(), IntentRequest{
		CarType: pricing.CategorySevenSeater,
		Days:    1,
		Weekend: true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create payment intent")
}
