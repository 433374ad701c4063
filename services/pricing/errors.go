package pricing

import "fmt"

// InvalidCategoryError signals an unknown car category key.
type InvalidCategoryError struct {
	Category string
}

func (e InvalidCategoryError) Error() string {
	return fmt.Sprintf("unknown car type %q", e.Category)
}

// InvalidDateRangeError signals an unusable rental period: return not after
// pickup, a day count below one, or a pickup date in the past.
type InvalidDateRangeError struct {
	Reason string
}

func (e InvalidDateRangeError) Error() string {
	return e.Reason
}

// InvalidDistanceError signals a negative travelled distance.
type InvalidDistanceError struct {
	DistanceKm int
}

func (e InvalidDistanceError) Error() string {
	return fmt.Sprintf("distance cannot be negative, got %d km", e.DistanceKm)
}
