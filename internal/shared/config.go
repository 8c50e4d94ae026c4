package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv          string
	Profile         string
	HotelAPIBase    string
	BookingAPIBase  string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	MetricsAddr     string
	APIRPS          int
	PrefetchWorkers int
	UploadMaxBytes  int64
	CacheTTL        time.Duration
	SessionTTL      time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		Profile:         env("SESSION_PROFILE", "default"),
		HotelAPIBase:    env("HOTEL_API_BASE", "http://localhost:8001"),
		BookingAPIBase:  env("BOOKING_API_BASE", "http://localhost:8002"),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		MetricsAddr:     env("METRICS_ADDR", ""),
		APIRPS:          atoi("API_RPS", 5),
		PrefetchWorkers: atoi("PREFETCH_WORKERS", 8),
		UploadMaxBytes:  int64(atoi("UPLOAD_MAX_BYTES", 5*1024*1024)),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		SessionTTL:      time.Duration(atoi("SESSION_TTL_SECONDS", 7*24*3600)) * time.Second,
	}
	if c.HotelAPIBase == "" || c.BookingAPIBase == "" {
		log.Warn().Msg("service base URLs are empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
