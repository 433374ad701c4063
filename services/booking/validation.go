package booking

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Indian mobile numbers, with or without the country code.
	phonePattern = regexp.MustCompile(`^(\+91|91)?[6789]\d{9}$`)
)

// validate checks all submission fields and parses the dates. Date-range
// rules (return after pickup, pickup not in the past) are enforced by the
// pricing engine during recomputation, not here.
func (in SubmissionInput) validate() (pickup, ret time.Time, err error) {
	required := []struct {
		field, value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"carType", in.CarType},
		{"pickupDate", in.PickupDate},
		{"returnDate", in.ReturnDate},
		{"pickupLocation", in.PickupLocation},
	}
	for _, r := range required {
		if r.value == "" {
			return time.Time{}, time.Time{}, ValidationError{Field: r.field, Reason: "is required"}
		}
	}

	if !emailPattern.MatchString(in.Email) {
		return time.Time{}, time.Time{}, ValidationError{Field: "email", Reason: "invalid email format"}
	}
	if !phonePattern.MatchString(strings.ReplaceAll(in.Phone, " ", "")) {
		return time.Time{}, time.Time{}, ValidationError{Field: "phone", Reason: "invalid phone number format"}
	}

	pickup, err = time.ParseInLocation(dateLayout, in.PickupDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ValidationError{Field: "pickupDate", Reason: "invalid date, expected YYYY-MM-DD"}
	}
	ret, err = time.ParseInLocation(dateLayout, in.ReturnDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ValidationError{Field: "returnDate", Reason: "invalid date, expected YYYY-MM-DD"}
	}
	return pickup, ret, nil
}
