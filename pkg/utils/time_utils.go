package utils

import (
	"fmt"
	"time"
)

// Now returns the current time in UTC. All stored timestamps use UTC.
func Now() time.Time { return time.Now().UTC() }

// AddDays shifts t by a flat number of 24h days. Billing dates are
// day-offset based, never calendar-month aware.
func AddDays(t time.Time, days int) time.Time {
	return t.Add(time.Duration(days) * 24 * time.Hour)
}

// FormatDisplay renders a timestamp the way the activity log shows it,
// e.g. "Jan 27, 2026 15:37".
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006 15:04")
}

// TimeAgo renders a coarse relative duration between t and now.
func TimeAgo(t time.Time, now time.Time) string {
	if t.IsZero() || t.After(now) {
		return "just now"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(d.Hours()/(24*7)))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(d.Hours()/(24*365)))
	}
}
