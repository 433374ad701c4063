package catalog

import (
	"swiftfleet/models"
	"swiftfleet/services/pricing"
)

// Static car catalog. Rates come from the pricing rate table so the catalog
// can never drift from what quotes charge.
var carDetails = map[string]models.Car{
	pricing.CategoryFiveSeater: {
		ID:          pricing.CategoryFiveSeater,
		Name:        "5-Seater Cars",
		Description: "Perfect for small families and city trips. Comfortable and fuel-efficient.",
		Specs: models.CarSpecs{
			Seating:      "5 People",
			FuelType:     "Petrol/Diesel",
			Transmission: "Manual/Automatic",
			AC:           "Yes",
		},
		Features: []string{
			"Air Conditioning",
			"Music System",
			"Power Steering",
			"Central Locking",
			"Comfortable Seating",
			"GPS Navigation",
		},
		Models: []string{"Maruti Swift Dzire", "Honda Amaze", "Hyundai Xcent"},
	},
	pricing.CategorySevenSeater: {
		ID:          pricing.CategorySevenSeater,
		Name:        "7-Seater Cars",
		Description: "Spacious SUVs perfect for large families and group travels.",
		Specs: models.CarSpecs{
			Seating:      "7 People",
			FuelType:     "Petrol/Diesel",
			Transmission: "Manual/Automatic",
			AC:           "Yes",
		},
		Features: []string{
			"Spacious Interior",
			"Extra Luggage Space",
			"Premium Sound System",
			"Climate Control",
			"Safety Features",
			"Entertainment System",
		},
		Models: []string{"Toyota Innova", "Mahindra Xylo", "Maruti Ertiga"},
	},
}

// CarByID returns the catalog entry for a category key.
func CarByID(id string) (models.Car, bool) {
	car, ok := carDetails[id]
	if !ok {
		return models.Car{}, false
	}
	rate, _ := pricing.RateFor(id)
	car.WeekdayRate = rate.Weekday
	car.WeekendRate = rate.Weekend
	car.ListRate = rate.List
	return car, true
}

// Cars returns all catalog entries in category order.
func Cars() []models.Car {
	cars := make([]models.Car, 0, len(carDetails))
	for _, id := range pricing.Categories() {
		if car, ok := CarByID(id); ok {
			cars = append(cars, car)
		}
	}
	return cars
}
