package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hotel_manager/internal/adapters/observability"
	"hotel_manager/internal/domain"
)

// Client talks to the booking service, which also fronts authentication.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
	}, nil
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		Role      string `json:"role"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
	} `json:"user"`
}

// Login exchanges credentials for a token and profile. Every 4xx comes
// back as the same generic credential error; the UI never distinguishes
// "no such user" from "wrong password".
func (c *Client) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	body := map[string]string{"email": email, "password": password}
	var out loginResponse
	status, err := c.postJSON(ctx, "/api/v1/users/login", "login", "", body, &out)
	if err != nil {
		return domain.Identity{}, err
	}
	if status >= 400 && status < 500 {
		return domain.Identity{}, domain.ErrBadCredentials
	}
	if status >= 500 {
		return domain.Identity{}, &domain.ServerError{Status: status}
	}
	return domain.Identity{
		Token:       out.Token,
		Role:        domain.ParseRole(out.User.Role),
		DisplayName: strings.TrimSpace(out.User.FirstName + " " + out.User.LastName),
		Email:       out.User.Email,
	}, nil
}

// Register creates an account. A 4xx is reported as the generic
// duplicate-registration error.
func (c *Client) Register(ctx context.Context, p domain.RegisterProfile) error {
	status, err := c.postJSON(ctx, "/api/v1/users/register", "register", "", p, nil)
	if err != nil {
		return err
	}
	if status >= 400 && status < 500 {
		return domain.ErrAlreadyRegistered
	}
	if status >= 500 {
		return &domain.ServerError{Status: status}
	}
	return nil
}

type bookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
}

// MyBookings returns the caller's reservations, newest first as the
// service orders them.
func (c *Client) MyBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/v1/bookings/my-bookings", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("booking", "my-bookings", resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		var out bookingsResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, err
		}
		return out.Bookings, nil
	case http.StatusUnauthorized:
		return nil, domain.ErrUnauthorized
	case http.StatusForbidden:
		return nil, domain.ErrForbidden
	default:
		return nil, &domain.ServerError{Status: resp.StatusCode}
	}
}

// postJSON sends a JSON body and returns the status code; 2xx responses
// with a non-nil out are decoded. Non-2xx statuses are returned for the
// caller to classify, since auth maps them to its own sentinels.
func (c *Client) postJSON(ctx context.Context, path, endpoint, token string, in, out any) (int, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("booking", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}
