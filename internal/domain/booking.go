package domain

import "time"

// Booking is a reservation record owned by the booking service. The
// client holds a read-only list per fetch, keyed by ID. HotelName may be
// empty when the hotel was deleted after the booking was made; renderers
// fall back to the hotel ID.
type Booking struct {
	ID         string    `json:"id"`
	HotelID    string    `json:"hotel_id"`
	HotelName  string    `json:"hotel_name,omitempty"`
	CheckIn    time.Time `json:"check_in_date"`
	CheckOut   time.Time `json:"check_out_date"`
	Guests     int       `json:"guests"`
	RoomType   string    `json:"room_type"`
	TotalPrice float64   `json:"total_price"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	Reference  string    `json:"booking_reference"`
	CreatedAt  time.Time `json:"created_at"`
}

// HotelLabel returns the display name for the booked hotel, or the hotel
// ID when the catalog record no longer exists.
func (b Booking) HotelLabel() string {
	if b.HotelName != "" {
		return b.HotelName
	}
	return b.HotelID
}
