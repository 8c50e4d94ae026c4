package app

import "hotel_manager/internal/domain"

// RequiredRole is what a surface demands before it renders.
type RequiredRole int

const (
	RequireAny RequiredRole = iota
	RequireAdmin
)

// Surfaces the guard redirects to. Mirrors the product's routes.
const (
	LoginPath     = "/"
	DashboardPath = "/dashboard"
	AdminPath     = "/admin"
)

// Decision is the guard's verdict for one page entry. When Allowed is
// false, Redirect names the surface to land on and Message, if set, is
// shown as a blocking notice first.
type Decision struct {
	Allowed  bool
	Redirect string
	Message  string
}

// Authorize maps (required role, cached session) to a decision. It is
// pure and must run before any data fetch; a fetch issued for a denied
// page is a defect.
func Authorize(required RequiredRole, session *domain.Identity) Decision {
	if session == nil {
		d := Decision{Redirect: LoginPath}
		if required == RequireAdmin {
			d.Message = "Access denied. Administrators only."
		}
		return d
	}
	if required == RequireAdmin && !session.IsAdmin() {
		return Decision{
			Redirect: DashboardPath,
			Message:  "Access denied. Administrators only.",
		}
	}
	return Decision{Allowed: true}
}

// LandingPath is where a fresh login lands: admins on the admin surface,
// everyone else on the dashboard.
func LandingPath(id domain.Identity) string {
	if id.IsAdmin() {
		return AdminPath
	}
	return DashboardPath
}
