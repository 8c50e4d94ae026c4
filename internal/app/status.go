package app

import "strings"

// Severity drives how a booking status is rendered.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityNeutral Severity = "neutral"
)

// StatusView is the display form of a reservation's lifecycle status.
type StatusView struct {
	Label    string
	Severity Severity
}

// ClassifyStatus maps a raw, case-insensitive status string to its
// display form. Total by construction: the server owns the status
// vocabulary and may grow it, so unknown values pass through verbatim
// with neutral severity instead of being rejected.
func ClassifyStatus(raw string) StatusView {
	switch strings.ToLower(raw) {
	case "confirmed":
		return StatusView{Label: "Confirmed", Severity: SeveritySuccess}
	case "pending":
		return StatusView{Label: "Pending", Severity: SeverityWarning}
	case "cancelled":
		return StatusView{Label: "Cancelled", Severity: SeverityError}
	default:
		return StatusView{Label: raw, Severity: SeverityNeutral}
	}
}
