package app

import (
	"context"
	"fmt"
	"time"

	"hotel_manager/internal/domain"
)

const catalogKey = "hotels:all"

func hotelKey(id string) string { return fmt.Sprintf("hotel:%s", id) }

// CatalogService reads the remote hotel catalog through the page-load
// cache and derives filtered views from it.
type CatalogService struct {
	api      domain.CatalogAPI
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCatalogService(api domain.CatalogAPI, cache domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{api: api, cache: cache, cacheTTL: ttl}
}

// List returns the full catalog, cache-aside.
func (s *CatalogService) List(ctx context.Context, token string) ([]domain.HotelSummary, error) {
	var hotels []domain.HotelSummary
	if ok, _ := s.cache.Get(ctx, catalogKey, &hotels); ok {
		return hotels, nil
	}
	hotels, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, catalogKey, hotels, int(s.cacheTTL.Seconds()))
	return hotels, nil
}

// Get returns one hotel, cache-aside per hotel.
func (s *CatalogService) Get(ctx context.Context, token, id string) (domain.HotelSummary, error) {
	var h domain.HotelSummary
	if ok, _ := s.cache.Get(ctx, hotelKey(id), &h); ok {
		return h, nil
	}
	h, err := s.api.Get(ctx, token, id)
	if err != nil {
		return domain.HotelSummary{}, err
	}
	_ = s.cache.Set(ctx, hotelKey(id), h, int(s.cacheTTL.Seconds()))
	return h, nil
}

// Search validates the criteria, then fetches and filters the catalog.
// Invalid criteria block the search before any fetch is issued.
func (s *CatalogService) Search(ctx context.Context, token string, c domain.SearchCriteria) ([]domain.HotelSummary, error) {
	c = c.Normalize()
	if err := ValidateCriteria(c); err != nil {
		return nil, err
	}
	hotels, err := s.List(ctx, token)
	if err != nil {
		return nil, err
	}
	return FilterHotels(hotels, c), nil
}

// Prime stores one hotel into the per-hotel cache. Used by the cache
// warmer after a catalog pull.
func (s *CatalogService) Prime(ctx context.Context, h domain.HotelSummary) error {
	return s.cache.Set(ctx, hotelKey(h.ID), h, int(s.cacheTTL.Seconds()))
}
