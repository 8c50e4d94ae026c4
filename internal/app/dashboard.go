package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hotel_manager/internal/domain"
)

// DashboardData is everything the dashboard surface renders.
type DashboardData struct {
	Hotels   []domain.HotelSummary
	Bookings []BookingView
}

// DashboardService assembles the landing page: catalog and personal
// bookings are independent fetches with no ordering guarantee between
// them, so they run concurrently.
type DashboardService struct {
	catalog  *CatalogService
	bookings *BookingService
}

func NewDashboardService(c *CatalogService, b *BookingService) *DashboardService {
	return &DashboardService{catalog: c, bookings: b}
}

// Load fetches catalog and bookings concurrently. On failure the first
// error is returned and the caller keeps whatever it rendered last;
// partial results are discarded, never merged into prior state.
func (s *DashboardService) Load(ctx context.Context, token string) (DashboardData, error) {
	var data DashboardData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hotels, err := s.catalog.List(gctx, token)
		if err != nil {
			return err
		}
		data.Hotels = hotels
		return nil
	})
	g.Go(func() error {
		views, err := s.bookings.MyBookings(gctx, token)
		if err != nil {
			return err
		}
		data.Bookings = views
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardData{}, err
	}
	return data, nil
}
