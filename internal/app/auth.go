package app

import (
	"context"
	"fmt"

	"hotel_manager/internal/domain"
)

// AuthService exchanges credentials with the auth service and owns the
// session lifecycle around it.
type AuthService struct {
	api      domain.AuthAPI
	sessions domain.SessionStore
}

func NewAuthService(api domain.AuthAPI, sessions domain.SessionStore) *AuthService {
	return &AuthService{api: api, sessions: sessions}
}

// Login exchanges credentials for an identity and caches it. The cached
// identity is what every subsequent guard decision reads.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	id, err := s.api.Login(ctx, email, password)
	if err != nil {
		return domain.Identity{}, err
	}
	if err := s.sessions.Set(ctx, id); err != nil {
		return domain.Identity{}, fmt.Errorf("cache session: %w", err)
	}
	return id, nil
}

// Register creates an account. Required fields are checked locally so a
// half-empty form never reaches the network.
func (s *AuthService) Register(ctx context.Context, p domain.RegisterProfile) error {
	if p.Email == "" || p.Password == "" || p.FirstName == "" || p.LastName == "" {
		return &domain.ValidationError{Reason: "email, password, first and last name are required"}
	}
	return s.api.Register(ctx, p)
}

// Current returns the cached identity, if any.
func (s *AuthService) Current(ctx context.Context) (domain.Identity, bool, error) {
	return s.sessions.Get(ctx)
}

// Logout clears the session wholesale. Safe to call when already logged
// out.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}
