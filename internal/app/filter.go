package app

import (
	"strings"

	"hotel_manager/internal/domain"
)

// ValidateCriteria checks the search form before a search is allowed to
// execute. Same-day stays are rejected: checkout must be strictly after
// checkin.
func ValidateCriteria(c domain.SearchCriteria) error {
	if c.City == "" || c.CheckIn.IsZero() || c.CheckOut.IsZero() {
		return &domain.ValidationError{Reason: "city/checkin/checkout required"}
	}
	if !c.CheckOut.After(c.CheckIn) {
		return &domain.ValidationError{Reason: "checkout must be after checkin"}
	}
	return nil
}

// FilterHotels derives the displayed set: case-insensitive substring
// match of the criteria city against each hotel's city, input order
// preserved. An empty city means browse-all and returns the input
// unchanged. Pure: never mutates the source list.
func FilterHotels(hotels []domain.HotelSummary, c domain.SearchCriteria) []domain.HotelSummary {
	if c.City == "" {
		return hotels
	}
	needle := strings.ToLower(c.City)
	out := make([]domain.HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		if strings.Contains(strings.ToLower(h.City), needle) {
			out = append(out, h)
		}
	}
	return out
}
