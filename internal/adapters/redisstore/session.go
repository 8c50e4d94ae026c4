package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"hotel_manager/internal/domain"
)

// SessionStore keeps the authenticated identity in Redis under one
// well-known key per client profile, so it survives process restarts the
// way a browser session cache survives reloads.
type SessionStore struct {
	c           *redis.Client
	key         string
	fallbackTTL time.Duration
}

func NewSessionStore(c *redis.Client, profile string, fallbackTTL time.Duration) *SessionStore {
	if profile == "" {
		profile = "default"
	}
	return &SessionStore{c: c, key: "session:" + profile, fallbackTTL: fallbackTTL}
}

// record wraps the identity with an opaque ID used only for audit
// logging; the identity itself carries no session identifier.
type record struct {
	ID string `json:"id"`
	domain.Identity
}

// Set caches the identity. The entry's TTL follows the bearer token's
// exp claim when the token is a parseable JWT, else the configured
// fallback. The signature is never verified here: the server owns the
// secret, the client only reads the expiry.
func (s *SessionStore) Set(ctx context.Context, id domain.Identity) error {
	rec := record{ID: uuid.NewString(), Identity: id}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	ttl := s.ttlFor(id.Token)
	if err := s.c.Set(ctx, s.key, b, ttl).Err(); err != nil {
		return err
	}
	log.Debug().Str("session_id", rec.ID).Str("role", string(id.Role)).Dur("ttl", ttl).Msg("session cached")
	return nil
}

// Get returns the cached identity. ok=false when absent or expired.
func (s *SessionStore) Get(ctx context.Context) (domain.Identity, bool, error) {
	b, err := s.c.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Identity{}, false, nil
	}
	if err != nil {
		return domain.Identity{}, false, err
	}
	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.Identity{}, false, err
	}
	return rec.Identity, true, nil
}

// Clear drops the session wholesale. Idempotent: clearing an absent
// session succeeds.
func (s *SessionStore) Clear(ctx context.Context) error {
	return s.c.Del(ctx, s.key).Err()
}

func (s *SessionStore) ttlFor(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return s.fallbackTTL
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s.fallbackTTL
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return s.fallbackTTL
	}
	return ttl
}
