package ports

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value cache. A miss is reported through ok,
// not through err.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// TrackingCacheKey is the cache key of a tracking lookup result.
func TrackingCacheKey(code string) string {
	return "shipments:track:" + code
}
