package pricing

// Car category keys.
const (
	CategoryFiveSeater  = "5-seater"
	CategorySevenSeater = "7-seater"
)

// Distance allowance included in the base price, and the flat overage rate.
const (
	DailyAllowanceKm = 250
	OverageRatePerKm = 15
)

// Rate holds the daily rates for one car category, in whole rupees.
// The list rate is the undiscounted price used for the savings line; it
// never enters the total.
type Rate struct {
	Weekday int
	Weekend int
	List    int
}

// rateTable is fixed at process start and never mutated. Weekend rate is
// required to be >= weekday rate for every category.
var rateTable = map[string]Rate{
	CategoryFiveSeater:  {Weekday: 1800, Weekend: 2000, List: 2200},
	CategorySevenSeater: {Weekday: 3500, Weekend: 3800, List: 4000},
}

// RateFor looks up the rate pair for a category key.
func RateFor(category string) (Rate, bool) {
	r, ok := rateTable[category]
	return r, ok
}

// Categories returns the known category keys.
func Categories() []string {
	return []string{CategoryFiveSeater, CategorySevenSeater}
}
