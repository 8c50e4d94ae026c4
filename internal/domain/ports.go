package domain

import (
	"context"
	"io"
)

// SessionStore is the durable cache of the authenticated identity.
// Clear is idempotent; Get after Clear returns ok=false, never a stale
// value.
type SessionStore interface {
	Set(ctx context.Context, id Identity) error
	Get(ctx context.Context) (Identity, bool, error)
	Clear(ctx context.Context) error
}

// Cache is the page-load read-through cache for catalog data.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// AuthAPI is the remote authentication service.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (Identity, error)
	Register(ctx context.Context, p RegisterProfile) error
}

// RegisterProfile is the registration payload. DateOfBirth travels as
// RFC3339 with a T00:00:00Z time component.
type RegisterProfile struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth"`
}

// CatalogAPI is the remote hotel catalog service. Reads are shared by
// user and admin; writes require an admin bearer token.
type CatalogAPI interface {
	List(ctx context.Context, token string) ([]HotelSummary, error)
	Get(ctx context.Context, token, id string) (HotelSummary, error)
	Create(ctx context.Context, token string, h HotelSummary) (string, error)
	Update(ctx context.Context, token, id string, h HotelSummary) error
	Delete(ctx context.Context, token, id string) error
}

// BookingAPI is the remote booking service.
type BookingAPI interface {
	MyBookings(ctx context.Context, token string) ([]Booking, error)
}

// UploadFile is one file staged for upload. Size must be known up front
// so the pipeline can pre-check the whole batch before any network call.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Uploader submits validated files to the image-upload endpoints.
// Returned URL order matches submission order.
type Uploader interface {
	UploadSingle(ctx context.Context, token string, f UploadFile) (string, error)
	UploadMany(ctx context.Context, token string, fs []UploadFile) ([]string, error)
}
