package store

import "time"

// Timestamps are stored as RFC 3339 strings so the documents stay readable
// and sort chronologically under a plain lexicographic sort. The layout keeps
// a fixed-width fractional part: RFC3339Nano trims trailing zeros, which
// would break the lexicographic ordering for timestamps within the same
// second.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
