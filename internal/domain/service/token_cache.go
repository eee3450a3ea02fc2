package service

import (
	"context"
	"time"

	"ezstudy/internal/errors"
)

// ErrCacheMiss is returned when a key is absent or has expired.
var ErrCacheMiss = errors.New("cache: key not found")

// TokenCache is an ephemeral key-value store with per-key TTLs. It backs
// the verification token mirror and the resend cooldown window.
type TokenCache interface {
	// Set stores a value under key, replacing any existing value.
	// A zero ttl stores the key without expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// SetIfAbsent stores a value only when the key does not already exist.
	// It reports whether the value was stored.
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	// Get returns the value stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Del removes a key. Removing a missing key is not an error.
	Del(ctx context.Context, key string) error

	// TTL reports the remaining lifetime of a key, or ErrCacheMiss.
	TTL(ctx context.Context, key string) (time.Duration, error)
}
