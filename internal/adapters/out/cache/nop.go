package cache

import (
	"context"
	"time"
)

// NopCache misses on every lookup and drops every write.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (NopCache) Delete(context.Context, string) error {
	return nil
}
