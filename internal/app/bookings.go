package app

import (
	"context"

	"hotel_manager/internal/domain"
)

// BookingView is a booking paired with its classified display status.
type BookingView struct {
	domain.Booking
	Status StatusView
}

// BookingService reads the caller's reservations and renders their
// lifecycle status.
type BookingService struct {
	api domain.BookingAPI
}

func NewBookingService(api domain.BookingAPI) *BookingService {
	return &BookingService{api: api}
}

// MyBookings fetches the caller's reservations. Classification never
// fails; a status the server invented yesterday still renders.
func (s *BookingService) MyBookings(ctx context.Context, token string) ([]BookingView, error) {
	bs, err := s.api.MyBookings(ctx, token)
	if err != nil {
		return nil, err
	}
	out := make([]BookingView, len(bs))
	for i, b := range bs {
		out[i] = BookingView{Booking: b, Status: ClassifyStatus(b.Status)}
	}
	return out, nil
}
