package utils

import (
	"fmt"
	"strconv"
	"time"
)

// DayLayout is the calendar-day format used in backup keys.
const DayLayout = "2006-01-02"

// FormatDay renders t as its UTC calendar day.
func FormatDay(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day, expected YYYY-MM-DD, got %s", s)
	}
	return t, nil
}

// ParseSince parses a lower time bound given as RFC3339, YYYY-MM-DD or unix
// milliseconds, the formats the owner and admin apps send.
func ParseSince(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	if t, err := time.Parse(DayLayout, s); err == nil {
		return t, nil
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil && ms >= 0 {
		return time.UnixMilli(ms).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339, YYYY-MM-DD or unix milliseconds, got %s", s)
}
