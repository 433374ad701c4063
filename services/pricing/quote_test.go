package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftfleet/models"
)

// 2026-09-07 is a Monday.
var (
	mon = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	wed = time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	fri = time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
	sat = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	sun = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	today = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		carType    string
		days       int
		distanceKm int
		weekend    bool
		want       models.QuoteResult
	}{
		{
			name:    "two weekdays five seater",
			carType: CategoryFiveSeater, days: 2,
			want: models.QuoteResult{
				CarType: CategoryFiveSeater, Days: 2, DailyRate: 1800,
				BaseCost: 3600, TotalCost: 3600, Savings: 800,
			},
		},
		{
			name:    "weekend seven seater",
			carType: CategorySevenSeater, days: 2, weekend: true,
			want: models.QuoteResult{
				CarType: CategorySevenSeater, Days: 2, DailyRate: 3800,
				BaseCost: 7600, TotalCost: 7600, Savings: 400,
			},
		},
		{
			name:    "distance overage",
			carType: CategoryFiveSeater, days: 2, distanceKm: 600,
			want: models.QuoteResult{
				CarType: CategoryFiveSeater, Days: 2, DailyRate: 1800,
				BaseCost: 3600, ExtraDistanceKm: 100, ExtraDistanceCharge: 1500,
				TotalCost: 5100, Savings: 800,
			},
		},
		{
			name:    "distance within allowance",
			carType: CategoryFiveSeater, days: 2, distanceKm: 500,
			want: models.QuoteResult{
				CarType: CategoryFiveSeater, Days: 2, DailyRate: 1800,
				BaseCost: 3600, TotalCost: 3600, Savings: 800,
			},
		},
		{
			name:    "single weekend day seven seater with overage",
			carType: CategorySevenSeater, days: 1, distanceKm: 300, weekend: true,
			want: models.QuoteResult{
				CarType: CategorySevenSeater, Days: 1, DailyRate: 3800,
				BaseCost: 3800, ExtraDistanceKm: 50, ExtraDistanceCharge: 750,
				TotalCost: 4550, Savings: 200,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.carType, tt.days, tt.distanceKm, tt.weekend)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeInvalidInput(t *testing.T) {
	_, err := Compute("4-seater", 2, 0, false)
	var catErr InvalidCategoryError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, "4-seater", catErr.Category)

	_, err = Compute(CategoryFiveSeater, 0, 0, false)
	var rangeErr InvalidDateRangeError
	require.ErrorAs(t, err, &rangeErr)

	_, err = Compute(CategoryFiveSeater, 2, -10, false)
	var distErr InvalidDistanceError
	require.ErrorAs(t, err, &distErr)
	assert.Equal(t, -10, distErr.DistanceKm)
}

func TestComputeDeterministic(t *testing.T) {
	first, err := Compute(CategorySevenSeater, 3, 900, true)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Compute(CategorySevenSeater, 3, 900, true)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// The arithmetic identities hold across the whole input grid, and cost never
// decreases when days or distance grow.
func TestComputeIdentities(t *testing.T) {
	daysGrid := []int{1, 2, 3, 7, 30}
	distGrid := []int{0, 100, 250, 500, 501, 600, 10000}

	for _, cat := range Categories() {
		for _, weekend := range []bool{false, true} {
			prevByDist := map[int]int{}
			for _, days := range daysGrid {
				prevTotal := -1
				for _, dist := range distGrid {
					res, err := Compute(cat, days, dist, weekend)
					require.NoError(t, err)

					assert.Equal(t, res.BaseCost, res.DailyRate*res.Days)
					assert.Equal(t, res.ExtraDistanceCharge, res.ExtraDistanceKm*OverageRatePerKm)
					assert.Equal(t, res.TotalCost, res.BaseCost+res.ExtraDistanceCharge)

					wantExtra := dist - days*DailyAllowanceKm
					if wantExtra < 0 {
						wantExtra = 0
					}
					assert.Equal(t, wantExtra, res.ExtraDistanceKm)

					// Monotone in distance.
					assert.GreaterOrEqual(t, res.TotalCost, prevTotal)
					prevTotal = res.TotalCost

					// Monotone in days at fixed distance. Only holds while
					// the distance stays inside the allowance: past it, an
					// extra day trades the daily rate for 250 km of waived
					// overage, which can be the larger amount.
					if dist <= DailyAllowanceKm {
						if prev, ok := prevByDist[dist]; ok {
							assert.GreaterOrEqual(t, res.TotalCost, prev)
						}
						prevByDist[dist] = res.TotalCost
					}
				}
			}
		}
	}
}

func TestRateTableInvariant(t *testing.T) {
	for _, cat := range Categories() {
		rate, ok := RateFor(cat)
		require.True(t, ok)
		assert.GreaterOrEqual(t, rate.Weekend, rate.Weekday, cat)
		assert.Greater(t, rate.Weekday, 0, cat)
	}
}

func TestComputeForDates(t *testing.T) {
	t.Run("weekday span", func(t *testing.T) {
		res, err := ComputeForDates(models.QuoteRequest{
			CarType:    CategoryFiveSeater,
			PickupDate: mon,
			ReturnDate: wed,
		}, today)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Days)
		assert.Equal(t, 1800, res.DailyRate)
		assert.Equal(t, 3600, res.TotalCost)
	})

	t.Run("pickup on saturday uses weekend rate", func(t *testing.T) {
		res, err := ComputeForDates(models.QuoteRequest{
			CarType:    CategorySevenSeater,
			PickupDate: sat,
			ReturnDate: sat.AddDate(0, 0, 2), // Monday
		}, today)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Days)
		assert.Equal(t, 3800, res.DailyRate)
		assert.Equal(t, 7600, res.TotalCost)
	})

	t.Run("return equal to pickup rejected", func(t *testing.T) {
		_, err := ComputeForDates(models.QuoteRequest{
			CarType:    CategoryFiveSeater,
			PickupDate: mon,
			ReturnDate: mon,
		}, today)
		var rangeErr InvalidDateRangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("return before pickup rejected", func(t *testing.T) {
		_, err := ComputeForDates(models.QuoteRequest{
			CarType:    CategoryFiveSeater,
			PickupDate: wed,
			ReturnDate: mon,
		}, today)
		var rangeErr InvalidDateRangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("pickup in past rejected", func(t *testing.T) {
		_, err := ComputeForDates(models.QuoteRequest{
			CarType:    CategoryFiveSeater,
			PickupDate: mon,
			ReturnDate: wed,
		}, time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC))
		var rangeErr InvalidDateRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Contains(t, rangeErr.Reason, "past")
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		_, err := ComputeForDates(models.QuoteRequest{
			CarType:    "4-seater",
			PickupDate: mon,
			ReturnDate: wed,
		}, today)
		var catErr InvalidCategoryError
		require.ErrorAs(t, err, &catErr)
	})
}

func TestRentalDays(t *testing.T) {
	assert.Equal(t, 2, RentalDays(mon, wed))
	assert.Equal(t, 1, RentalDays(mon, mon.AddDate(0, 0, 1)))
	assert.Equal(t, 7, RentalDays(sat, sat.AddDate(0, 0, 7)))

	// Partial trailing day rounds up to a full rental period.
	pickupMorning := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	returnEarlier := time.Date(2026, 9, 9, 9, 0, 0, 0, time.UTC)
	returnLater := time.Date(2026, 9, 9, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, RentalDays(pickupMorning, returnEarlier))
	assert.Equal(t, 3, RentalDays(pickupMorning, returnLater))
}

func TestWeekendSpan(t *testing.T) {
	assert.False(t, WeekendSpan(mon, wed))
	assert.False(t, WeekendSpan(mon, fri))
	assert.True(t, WeekendSpan(fri, sat))
	assert.True(t, WeekendSpan(sat, sat.AddDate(0, 0, 2)))
	assert.True(t, WeekendSpan(sun, sun.AddDate(0, 0, 2)))
	// A range that merely crosses a weekend without touching it on either
	// boundary stays on the weekday rate. Policy, not a bug.
	assert.False(t, WeekendSpan(fri, fri.AddDate(0, 0, 4)))
}

func TestBuildBreakdown(t *testing.T) {
	res, err := Compute(CategoryFiveSeater, 2, 600, false)
	require.NoError(t, err)

	b := BuildBreakdown(res, "₹")
	assert.Equal(t, "₹1800 × 2 days = ₹3600", b.BaseRate)
	assert.Equal(t, "₹15 × 100 km = ₹1500", b.ExtraDistance)
	assert.Equal(t, "₹5100", b.Total)

	noExtra, err := Compute(CategoryFiveSeater, 2, 0, false)
	require.NoError(t, err)
	assert.Equal(t, "No extra charges", BuildBreakdown(noExtra, "₹").ExtraDistance)
}
