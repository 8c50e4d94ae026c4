package app

import (
	"context"
	"fmt"

	"hotel_manager/internal/domain"
)

// AdminService drives the hotel-management surface: draft submission and
// deletion against the catalog service, with cache invalidation so the
// next read sees the write.
type AdminService struct {
	api   domain.CatalogAPI
	cache domain.Cache
}

func NewAdminService(api domain.CatalogAPI, cache domain.Cache) *AdminService {
	return &AdminService{api: api, cache: cache}
}

// CreateHotel validates the draft locally, submits it, and evicts the
// catalog list so browse sees the new record.
func (s *AdminService) CreateHotel(ctx context.Context, token string, d domain.HotelDraft) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	id, err := s.api.Create(ctx, token, d.Summary())
	if err != nil {
		return "", fmt.Errorf("create hotel: %w", err)
	}
	s.invalidate(ctx, id)
	return id, nil
}

// UpdateHotel validates and submits an edit of an existing record.
func (s *AdminService) UpdateHotel(ctx context.Context, token, id string, d domain.HotelDraft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := s.api.Update(ctx, token, id, d.Summary()); err != nil {
		return fmt.Errorf("update hotel %s: %w", id, err)
	}
	s.invalidate(ctx, id)
	return nil
}

// DeleteHotel removes a record. Bookings referencing it stay valid; the
// bookings view falls back to the hotel ID for the name.
func (s *AdminService) DeleteHotel(ctx context.Context, token, id string) error {
	if err := s.api.Delete(ctx, token, id); err != nil {
		return fmt.Errorf("delete hotel %s: %w", id, err)
	}
	s.invalidate(ctx, id)
	return nil
}

// A write touches both the list and the per-hotel entry.
func (s *AdminService) invalidate(ctx context.Context, id string) {
	_ = s.cache.Del(ctx, catalogKey)
	if id != "" {
		_ = s.cache.Del(ctx, hotelKey(id))
	}
}
