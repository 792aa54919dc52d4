package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD), falling back
// to RFC3339 for clients that send full timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// FormatDate formats a time as an ISO 8601 calendar date
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTimestamp formats a time as RFC3339
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
