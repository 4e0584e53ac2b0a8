package feed

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a raw date token as published by a feed (RFC 1123/2822, ISO 8601 and
// other common layouts). Tokens without a zone are taken as UTC.
func ParseDate(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(token, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// isoLayout is a fixed-width UTC layout, so keys compare lexically in time order
const isoLayout = "2006-01-02T15:04:05.000Z"

// SortKey returns the ISO-8601 timestamp used to order items, empty if the token is not a date
func SortKey(token string) string {
	t, ok := ParseDate(token)
	if !ok {
		return ""
	}
	return t.Format(isoLayout)
}
