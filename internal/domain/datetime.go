package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and display format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date. Both "2024-09-01" and a full RFC 3339
// timestamp are accepted; only the date part of a timestamp is kept.
// The result is at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders a date in DateLayout.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// ParseTimeOfDay normalizes a 24-hour time of day to zero-padded "HH:MM",
// or "HH:MM:SS" when seconds are non-zero. Zero padding keeps string
// comparison chronological.
func ParseTimeOfDay(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Second() != 0 {
			return t.Format("15:04:05"), nil
		}
		return t.Format("15:04"), nil
	}
	return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
}
