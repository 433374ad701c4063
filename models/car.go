package models

// CarSpecs holds the headline specifications shown on a car detail page.
type CarSpecs struct {
	Seating      string `bson:"seating" json:"seating"`
	FuelType     string `bson:"fuel_type" json:"fuelType"`
	Transmission string `bson:"transmission" json:"transmission"`
	AC           string `bson:"ac" json:"ac"`
}

// Car describes a rentable car category. Rates are whole rupees per day.
type Car struct {
	ID          string   `bson:"id" json:"id"` // category key, e.g. "5-seater"
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	WeekdayRate int      `bson:"weekday_rate" json:"weekdayRate"`
	WeekendRate int      `bson:"weekend_rate" json:"weekendRate"`
	ListRate    int      `bson:"list_rate" json:"listRate"` // undiscounted rate, feeds the savings line
	Specs       CarSpecs `bson:"specs" json:"specifications"`
	Features    []string `bson:"features" json:"features"`
	Models      []string `bson:"models" json:"models"`
}
