package main

import (
	"context"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_manager/internal/adapters/hotelapi"
	"hotel_manager/internal/adapters/observability"
	"hotel_manager/internal/adapters/redisstore"
	"hotel_manager/internal/app"
	"hotel_manager/internal/shared"
)

// prefetch warms the per-hotel Redis cache from the catalog service
// using the current session's token, so the console's detail views hit
// the cache cold-start free.
func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.HotelAPIBase).
		Int("workers", cfg.PrefetchWorkers).
		Msg("prefetch starting")

	rdb := redisstore.NewClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := redisstore.NewSessionStore(rdb, cfg.Profile, cfg.SessionTTL)

	id, ok, err := sessions.Get(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("session read failed")
	}
	if !ok {
		log.Fatal().Msg("no cached session; log in with the console first")
	}

	client, err := hotelapi.New(cfg.HotelAPIBase, cfg.APIRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize hotel client")
	}
	catalog := app.NewCatalogService(client, redisstore.NewCache(rdb), cfg.CacheTTL)

	hotels, err := catalog.List(ctx, id.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog list failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.PrefetchWorkers))
	var wg sync.WaitGroup

	for _, h := range hotels {
		h := h

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := catalog.Prime(ctx, h); err != nil {
				log.Warn().Str("id", h.ID).Err(err).Msg("prime failed")
				return
			}
			log.Info().Str("id", h.ID).Msg("primed")
		}()
	}

	wg.Wait()
	log.Info().Int("hotels", len(hotels)).Msg("prefetch completed")
}
