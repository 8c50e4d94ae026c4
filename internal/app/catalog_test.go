package app_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"hotel_manager/internal/app"
	"hotel_manager/internal/domain"
)

func TestCatalogList_CacheMissThenHit(t *testing.T) {
	api := &fakeCatalogAPI{hotels: []domain.HotelSummary{
		{ID: "h1", Name: "Hotel Uno", City: "Córdoba"},
	}}
	cache := &fakeCache{}
	svc := app.NewCatalogService(api, cache, 10*time.Minute)

	// Miss (first time, populates cache)
	hotels, err := svc.List(context.Background(), "tok")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(hotels) != 1 || hotels[0].Name != "Hotel Uno" {
		t.Fatalf("unexpected hotels: %+v", hotels)
	}

	// Mutate the API to prove the second read comes from cache
	api.hotels[0].Name = "SHOULD NOT SEE THIS"

	hotels2, err := svc.List(context.Background(), "tok")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if hotels2[0].Name != "Hotel Uno" {
		t.Fatalf("expected cached name, got %s", hotels2[0].Name)
	}
	if n := atomic.LoadInt32(&api.listCalls); n != 1 {
		t.Fatalf("expected 1 remote call, got %d", n)
	}
}

func TestCatalogSearch_InvalidCriteriaBlocksFetch(t *testing.T) {
	api := &fakeCatalogAPI{hotels: []domain.HotelSummary{{ID: "h1", City: "Córdoba"}}}
	svc := app.NewCatalogService(api, &fakeCache{}, time.Minute)

	criteria, err := domain.ParseCriteria("Cordoba", "2025-01-10", "2025-01-09", 2)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = svc.Search(context.Background(), "tok", criteria)
	if !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
	if n := atomic.LoadInt32(&api.listCalls); n != 0 {
		t.Fatalf("fetch issued for invalid criteria: %d calls", n)
	}
}

func TestCatalogSearch_FiltersByCity(t *testing.T) {
	api := &fakeCatalogAPI{hotels: []domain.HotelSummary{
		{ID: "h1", City: "Córdoba"},
		{ID: "h2", City: "Mendoza"},
		{ID: "h3", City: "cordoba capital"},
	}}
	svc := app.NewCatalogService(api, &fakeCache{}, time.Minute)

	criteria, _ := domain.ParseCriteria("cord", "2025-01-10", "2025-01-12", 2)
	got, err := svc.Search(context.Background(), "tok", criteria)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// "Córdoba" does not contain the plain-ascii "cord"; only h3 matches.
	if len(got) != 1 || got[0].ID != "h3" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestCatalogGet_PrimedByWarmer(t *testing.T) {
	api := &fakeCatalogAPI{}
	cache := &fakeCache{}
	svc := app.NewCatalogService(api, cache, time.Minute)

	h := domain.HotelSummary{ID: "h9", Name: "Warmed", City: "Rosario"}
	if err := svc.Prime(context.Background(), h); err != nil {
		t.Fatalf("prime: %v", err)
	}

	got, err := svc.Get(context.Background(), "tok", "h9")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Name != "Warmed" {
		t.Fatalf("expected warmed entry, got %+v", got)
	}
}
