package domain

import "strings"

// Role is the authorization role carried in the cached identity.
// Kept as a string for easy persistence in the session cache.
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole normalizes a server-provided role string. Unknown values
// degrade to guest rather than failing: the session must never hold a
// role outside the enumerated set.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	default:
		return RoleGuest
	}
}

// Identity is the authenticated principal cached client-side for the
// session: opaque bearer token plus the profile fields the UI shows.
type Identity struct {
	Token       string `json:"token"`
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

func (id Identity) IsAdmin() bool { return id.Role == RoleAdmin }
