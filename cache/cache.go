package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Backend names accepted by configuration.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// ErrUnknownBackend is returned for a backend name other than none, file or redis.
var ErrUnknownBackend = errors.New("cache: unknown backend")

// Cache stores opaque values with an optional TTL (0 means no expiry).
type Cache interface {
	// Get returns the value and true on a hit; (nil, false, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key; a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry this cache owns.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Open builds the backend named by backend. dir is used by the file
// backend and redis by the redis backend.
func Open(backend, dir string, redis RedisOptions) (Cache, error) {
	switch backend {
	case BackendNone, "":
		return NewNullCache(), nil
	case BackendFile:
		fc, err := NewFileCache(dir)
		if err != nil {
			return nil, err
		}

		return fc, nil
	case BackendRedis:
		return NewRedisCache(redis), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
