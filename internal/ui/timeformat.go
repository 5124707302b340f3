package ui

import (
	"fmt"
	"time"
)

var timeNow = time.Now

// FormatRelativeTime describes how long ago t happened in at most ~8
// characters. Anything a week or older, or in the future, is shown as a date.
func FormatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	now := timeNow()
	if t.After(now) {
		return formatAbsoluteTime(t, now)
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", max(int(diff/time.Minute), 1))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	default:
		return formatAbsoluteTime(t, now)
	}
}

func formatAbsoluteTime(t, now time.Time) string {
	local := t.In(now.Location())
	if local.Year() == now.Year() {
		return local.Format("Jan 2")
	}
	return local.Format("Jan '06")
}

// formatTimestamp renders a server timestamp for the detail pane.
func formatTimestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	local := t.In(timeNow().Location())
	return fmt.Sprintf("%s (%s)", local.Format("2006-01-02 15:04"), FormatRelativeTime(*t))
}
