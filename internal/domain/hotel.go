package domain

import "regexp"

// HotelSummary is a catalog record as served by the hotel service.
// The client holds these read-through per page load and never persists
// them across navigation.
type HotelSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	City        string     `json:"city"`
	Address     string     `json:"address"`
	Amenities   []string   `json:"amenities"`
	Rating      float64    `json:"rating"`
	PriceRange  PriceRange `json:"price_range"`
	Contact     Contact    `json:"contact"`
	Thumbnail   string     `json:"thumbnail"`
	Photos      []string   `json:"photos"`
}

type PriceRange struct {
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	Currency string  `json:"currency"`
}

type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// HotelDraft is the admin's in-progress, unsaved copy of a hotel's
// writable fields plus uncommitted image URLs. Created empty or seeded
// from an existing summary; converges back into one on submit.
type HotelDraft struct {
	Name        string
	Description string
	City        string
	Address     string
	Amenities   []string
	Rating      float64
	PriceRange  PriceRange
	Contact     Contact
	Thumbnail   string
	Images      []string
}

// NewDraft returns an empty draft with the defaults the admin form seeds.
func NewDraft() HotelDraft {
	return HotelDraft{
		Amenities:  []string{"WiFi", "Desayuno"},
		Rating:     4.0,
		PriceRange: PriceRange{MinPrice: 10000, MaxPrice: 25000, Currency: "ARS"},
	}
}

// DraftFrom seeds a draft from an existing catalog record for editing.
func DraftFrom(h HotelSummary) HotelDraft {
	d := HotelDraft{
		Name:        h.Name,
		Description: h.Description,
		City:        h.City,
		Address:     h.Address,
		Amenities:   append([]string(nil), h.Amenities...),
		Rating:      h.Rating,
		PriceRange:  h.PriceRange,
		Contact:     h.Contact,
		Thumbnail:   h.Thumbnail,
		Images:      append([]string(nil), h.Photos...),
	}
	if len(d.Amenities) == 0 {
		d.Amenities = []string{"WiFi", "Desayuno"}
	}
	return d
}

// Summary converts the draft back into the shape the catalog service accepts.
func (d HotelDraft) Summary() HotelSummary {
	return HotelSummary{
		Name:        d.Name,
		Description: d.Description,
		City:        d.City,
		Address:     d.Address,
		Amenities:   d.Amenities,
		Rating:      d.Rating,
		PriceRange:  d.PriceRange,
		Contact:     d.Contact,
		Thumbnail:   d.Thumbnail,
		Photos:      d.Images,
	}
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the draft invariant before submission is attempted:
// name, city, address and contact email non-empty, email well-formed.
func (d HotelDraft) Validate() error {
	if d.Name == "" || d.City == "" || d.Address == "" || d.Contact.Email == "" {
		return &ValidationError{Reason: "name, city, address and contact email are required"}
	}
	if !emailRe.MatchString(d.Contact.Email) {
		return &ValidationError{Reason: "contact email is not well-formed"}
	}
	return nil
}
