// Package cache is the response cache owned by the StatsBomb adapter.
// Entries are raw JSON documents keyed by endpoint and id; the underlying
// data is immutable historical record, so there is no invalidation policy
// and entries are stored without expiry.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrMiss is returned by Get when the key is not cached.
var ErrMiss = errors.New("cache: miss")

// Store is a key-value store for cached feed responses.
type Store interface {
	// Get returns the cached document for key, or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the document under key, without expiry.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases backend resources.
	Close() error
}

// Key builds a cache key from an endpoint name and its id arguments,
// e.g. Key("events", 303516) -> "statsbomb:events:303516".
func Key(endpoint string, ids ...int) string {
	parts := make([]string, 0, len(ids)+2)
	parts = append(parts, "statsbomb", endpoint)
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ":")
}
