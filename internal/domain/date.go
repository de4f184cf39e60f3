package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day key used by plans, logs and scores.
const DateLayout = "2006-01-02"

// ParseDate validates a YYYY-MM-DD day key and returns midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// FormatDate returns the UTC day key of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DateRange lists every day key from `from` to `to`, inclusive.
func DateRange(from, to time.Time) []string {
	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDate(d))
	}
	return days
}
