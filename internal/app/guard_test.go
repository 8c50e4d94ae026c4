package app_test

import (
	"testing"

	"hotel_manager/internal/app"
	"hotel_manager/internal/domain"
)

func TestAuthorize(t *testing.T) {
	admin := &domain.Identity{Token: "t", Role: domain.RoleAdmin}
	user := &domain.Identity{Token: "t", Role: domain.RoleUser}
	guest := &domain.Identity{Token: "t", Role: domain.RoleGuest}

	cases := []struct {
		name         string
		required     app.RequiredRole
		session      *domain.Identity
		wantAllowed  bool
		wantRedirect string
		wantMessage  bool
	}{
		{"absent session, any surface", app.RequireAny, nil, false, app.LoginPath, false},
		{"absent session, admin surface", app.RequireAdmin, nil, false, app.LoginPath, true},
		{"user on any surface", app.RequireAny, user, true, "", false},
		{"user on admin surface", app.RequireAdmin, user, false, app.DashboardPath, true},
		{"guest on admin surface", app.RequireAdmin, guest, false, app.DashboardPath, true},
		{"admin on admin surface", app.RequireAdmin, admin, true, "", false},
		{"admin on any surface", app.RequireAny, admin, true, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := app.Authorize(tc.required, tc.session)
			if d.Allowed != tc.wantAllowed {
				t.Fatalf("allowed: want %v, got %v", tc.wantAllowed, d.Allowed)
			}
			if d.Redirect != tc.wantRedirect {
				t.Fatalf("redirect: want %q, got %q", tc.wantRedirect, d.Redirect)
			}
			if (d.Message != "") != tc.wantMessage {
				t.Fatalf("message: want present=%v, got %q", tc.wantMessage, d.Message)
			}
		})
	}
}

func TestAuthorize_NonAdminNeverAllowedOnAdmin(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleGuest, domain.RoleUser} {
		id := &domain.Identity{Token: "t", Role: role}
		if d := app.Authorize(app.RequireAdmin, id); d.Allowed {
			t.Fatalf("role %s must never reach the admin surface", role)
		}
	}
}

func TestLandingPath(t *testing.T) {
	if got := app.LandingPath(domain.Identity{Role: domain.RoleAdmin}); got != app.AdminPath {
		t.Fatalf("admin lands on %s", got)
	}
	if got := app.LandingPath(domain.Identity{Role: domain.RoleUser}); got != app.DashboardPath {
		t.Fatalf("user lands on %s", got)
	}
}
