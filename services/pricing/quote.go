package pricing

import (
	"time"

	"swiftfleet/models"
)

// Compute returns the price breakdown for a pre-computed day count. This is
// the single authoritative computation behind the quote endpoint, the payment
// intent endpoint, and the booking submission path; it is pure and performs
// no I/O, so recomputing server-side is always safe.
func Compute(carType string, days, distanceKm int, weekend bool) (models.QuoteResult, error) {
	rate, ok := RateFor(carType)
	if !ok {
		return models.QuoteResult{}, InvalidCategoryError{Category: carType}
	}
	if days < 1 {
		return models.QuoteResult{}, InvalidDateRangeError{Reason: "rental must span at least one day"}
	}
	if distanceKm < 0 {
		return models.QuoteResult{}, InvalidDistanceError{DistanceKm: distanceKm}
	}

	dailyRate := rate.Weekday
	if weekend {
		dailyRate = rate.Weekend
	}
	baseCost := dailyRate * days

	allowedKm := days * DailyAllowanceKm
	extraKm := distanceKm - allowedKm
	if extraKm < 0 {
		extraKm = 0
	}
	extraCharge := extraKm * OverageRatePerKm

	return models.QuoteResult{
		CarType:             carType,
		Days:                days,
		DailyRate:           dailyRate,
		BaseCost:            baseCost,
		ExtraDistanceKm:     extraKm,
		ExtraDistanceCharge: extraCharge,
		TotalCost:           baseCost + extraCharge,
		Savings:             (rate.List - dailyRate) * days,
	}, nil
}

// ComputeForDates validates a date-shaped request, derives the day count and
// weekend flag, and delegates to Compute. The caller supplies its notion of
// "today" so the past-pickup check stays deterministic and testable.
func ComputeForDates(req models.QuoteRequest, today time.Time) (models.QuoteResult, error) {
	if !req.ReturnDate.After(req.PickupDate) {
		return models.QuoteResult{}, InvalidDateRangeError{Reason: "return date must be after pickup date"}
	}
	if dateOnly(req.PickupDate).Before(dateOnly(today)) {
		return models.QuoteResult{}, InvalidDateRangeError{Reason: "pickup date cannot be in the past"}
	}
	days := RentalDays(req.PickupDate, req.ReturnDate)
	return Compute(req.CarType, days, req.DistanceKm, WeekendSpan(req.PickupDate, req.ReturnDate))
}

// RentalDays returns the number of 24-hour rental periods, rounded up,
// between pickup and return. The subtraction is done in calendar days, not
// elapsed hours, so daylight-saving shifts cannot change the count.
func RentalDays(pickup, ret time.Time) int {
	days := int(dateOnly(ret).Sub(dateOnly(pickup)) / (24 * time.Hour))
	if clockTime(ret) > clockTime(pickup) {
		days++
	}
	return days
}

// WeekendSpan reports whether the weekend rate applies to a rental period.
// Policy: the weekend rate is triggered when either boundary date falls on a
// Saturday or Sunday, not by how many days of the range are weekend days.
func WeekendSpan(pickup, ret time.Time) bool {
	return isWeekendDay(pickup.Weekday()) || isWeekendDay(ret.Weekday())
}

func isWeekendDay(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clockTime(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}
