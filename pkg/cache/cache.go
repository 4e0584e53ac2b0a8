// Package cache provides time-boxed stores for raw feed text keyed by feed URL.
// Expired entries are treated as absent and replaced on the next Put, nothing is swept.
// Backends never return errors to callers: storage faults degrade to a cache miss.
package cache

import "time"

// DefaultTTL is the lifetime of a cached feed
const DefaultTTL = 15 * time.Minute

// keyPrefix separates feed entries from unrelated keys sharing the same storage
const keyPrefix = "feedcache:"

// Key returns the storage key for a feed URL
func Key(url string) string {
	return keyPrefix + url
}

// Entry is a single cached feed body
type Entry struct {
	FetchedAt time.Time
	RawText   string
}

// expired reports whether the entry is older than ttl at the given moment
func (e Entry) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.FetchedAt) > ttl
}
