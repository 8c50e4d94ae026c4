package domain

import (
	"errors"
	"testing"
)

func validDraft() HotelDraft {
	d := NewDraft()
	d.Name = "Hotel Plaza"
	d.City = "Buenos Aires"
	d.Address = "Av. de Mayo 1152"
	d.Contact.Email = "reservas@plaza.com.ar"
	return d
}

func TestDraftValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*HotelDraft)
		wantOK bool
	}{
		{"complete", func(d *HotelDraft) {}, true},
		{"missing name", func(d *HotelDraft) { d.Name = "" }, false},
		{"missing city", func(d *HotelDraft) { d.City = "" }, false},
		{"missing address", func(d *HotelDraft) { d.Address = "" }, false},
		{"missing email", func(d *HotelDraft) { d.Contact.Email = "" }, false},
		{"email without at", func(d *HotelDraft) { d.Contact.Email = "plaza.com.ar" }, false},
		{"email without dot", func(d *HotelDraft) { d.Contact.Email = "reservas@plaza" }, false},
		{"email with space", func(d *HotelDraft) { d.Contact.Email = "res ervas@plaza.com" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			err := d.Validate()
			if tc.wantOK && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if !tc.wantOK {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("Validate() = %v, want ValidationError", err)
				}
			}
		})
	}
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()
	if got := d.Amenities; len(got) != 2 || got[0] != "WiFi" || got[1] != "Desayuno" {
		t.Errorf("Amenities = %v", got)
	}
	if d.Rating != 4.0 {
		t.Errorf("Rating = %v, want 4.0", d.Rating)
	}
	if d.PriceRange.Currency != "ARS" || d.PriceRange.MinPrice != 10000 || d.PriceRange.MaxPrice != 25000 {
		t.Errorf("PriceRange = %+v", d.PriceRange)
	}
}

func TestDraftFromDoesNotAliasSource(t *testing.T) {
	h := HotelSummary{
		ID:        "h1",
		Name:      "Hotel Plaza",
		Amenities: []string{"Pileta"},
		Photos:    []string{"a.jpg"},
	}
	d := DraftFrom(h)
	d.Amenities[0] = "Spa"
	d.Images[0] = "b.jpg"

	if h.Amenities[0] != "Pileta" || h.Photos[0] != "a.jpg" {
		t.Fatal("editing the draft mutated the catalog record")
	}
}

func TestDraftSummaryRoundTrip(t *testing.T) {
	d := validDraft()
	d.Images = []string{"1.jpg", "2.jpg"}
	d.Thumbnail = "thumb.jpg"

	h := d.Summary()
	if h.Name != d.Name || h.City != d.City || h.Thumbnail != "thumb.jpg" {
		t.Fatalf("Summary() = %+v", h)
	}
	if len(h.Photos) != 2 || h.Photos[1] != "2.jpg" {
		t.Errorf("Photos = %v", h.Photos)
	}
	if h.ID != "" {
		t.Errorf("ID = %q, want empty; the service assigns it", h.ID)
	}
}
