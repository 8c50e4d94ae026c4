package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotel_manager/internal/adapters/bookingapi"
	"hotel_manager/internal/adapters/hotelapi"
	"hotel_manager/internal/adapters/observability"
	"hotel_manager/internal/adapters/redisstore"
	"hotel_manager/internal/app"
	"hotel_manager/internal/shared"
)

func main() {
	_ = godotenv.Load() // best effort; env vars win
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	rdb := redisstore.NewClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := redisstore.NewSessionStore(rdb, cfg.Profile, cfg.SessionTTL)
	cache := redisstore.NewCache(rdb)

	hotels, err := hotelapi.New(cfg.HotelAPIBase, cfg.APIRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("hotel client init failed")
	}
	bookings, err := bookingapi.New(cfg.BookingAPIBase)
	if err != nil {
		log.Fatal().Err(err).Msg("booking client init failed")
	}

	console := &Console{
		Auth:     app.NewAuthService(bookings, sessions),
		Catalog:  app.NewCatalogService(hotels, cache, cfg.CacheTTL),
		Bookings: app.NewBookingService(bookings),
		Admin:    app.NewAdminService(hotels, cache),
		Uploads:  app.NewUploadPipeline(hotels, cfg.UploadMaxBytes),
		In:       os.Stdin,
		Out:      os.Stdout,
	}
	console.Dashboard = app.NewDashboardService(console.Catalog, console.Bookings)

	log.Info().Str("hotel_api", cfg.HotelAPIBase).Str("booking_api", cfg.BookingAPIBase).Msg("console starting")
	if err := console.Run(); err != nil {
		log.Fatal().Err(err).Msg("console failed")
	}
}
