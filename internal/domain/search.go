package domain

import "time"

// SearchCriteria is the typed search form: mutated by user input,
// consumed read-only by the catalog filter and downstream requests.
type SearchCriteria struct {
	City     string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

const (
	MinGuests = 1
	MaxGuests = 10
)

// Normalize clamps guests into [MinGuests, MaxGuests]. The original form
// enforced the bound at the input widget; the controller enforces it here
// so every consumer sees criteria inside the invariant.
func (c SearchCriteria) Normalize() SearchCriteria {
	if c.Guests < MinGuests {
		c.Guests = MinGuests
	}
	if c.Guests > MaxGuests {
		c.Guests = MaxGuests
	}
	return c
}

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// ParseCriteria builds criteria from raw form values. Empty date strings
// yield zero times; validation decides whether that is acceptable.
func ParseCriteria(city, checkin, checkout string, guests int) (SearchCriteria, error) {
	c := SearchCriteria{City: city, Guests: guests}
	if checkin != "" {
		t, err := time.Parse(DateLayout, checkin)
		if err != nil {
			return SearchCriteria{}, &ValidationError{Reason: "checkin: invalid date"}
		}
		c.CheckIn = t
	}
	if checkout != "" {
		t, err := time.Parse(DateLayout, checkout)
		if err != nil {
			return SearchCriteria{}, &ValidationError{Reason: "checkout: invalid date"}
		}
		c.CheckOut = t
	}
	return c.Normalize(), nil
}
