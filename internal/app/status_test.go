package app_test

import (
	"testing"

	"pgregory.net/rapid"

	"hotel_manager/internal/app"
)

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		raw          string
		wantLabel    string
		wantSeverity app.Severity
	}{
		{"confirmed", "Confirmed", app.SeveritySuccess},
		{"CONFIRMED", "Confirmed", app.SeveritySuccess},
		{"Pending", "Pending", app.SeverityWarning},
		{"cancelled", "Cancelled", app.SeverityError},
		{"CaNcElLeD", "Cancelled", app.SeverityError},
		// unknown values pass through verbatim
		{"checked_in", "checked_in", app.SeverityNeutral},
		{"NO_SHOW", "NO_SHOW", app.SeverityNeutral},
		{"", "", app.SeverityNeutral},
	}
	for _, tc := range cases {
		got := app.ClassifyStatus(tc.raw)
		if got.Label != tc.wantLabel || got.Severity != tc.wantSeverity {
			t.Errorf("ClassifyStatus(%q) = %+v, want {%s %s}", tc.raw, got, tc.wantLabel, tc.wantSeverity)
		}
	}
}

// The server owns the status vocabulary: classification must be total
// over arbitrary input, never absent.
func TestClassifyStatus_Total(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.String().Draw(rt, "raw")
		got := app.ClassifyStatus(raw)
		switch got.Severity {
		case app.SeveritySuccess, app.SeverityWarning, app.SeverityError:
		case app.SeverityNeutral:
			if got.Label != raw {
				t.Fatalf("unknown status %q must pass through verbatim, got %q", raw, got.Label)
			}
		default:
			t.Fatalf("unexpected severity %q", got.Severity)
		}
	})
}
