package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical transport format, yyyy-MM-dd HH:mm:ssZ in UTC.
const DateLayout = "2006-01-02 15:04:05Z"

// FormatDateUTC renders t in DateLayout after converting it to UTC.
func FormatDateUTC(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDateUTC parses a DateLayout string as a UTC instant.
func ParseDateUTC(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}
