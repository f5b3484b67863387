package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/domain/types"
	"github.com/satooru65536/projfeed/pkg/repository"
	"github.com/satooru65536/projfeed/pkg/utils/logging"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

type kvStore struct {
	mu      sync.RWMutex
	entries map[types.CacheKey]*entry
}

// New creates a new in-memory key/value store. Expiry is evaluated against the context clock.
func New() interfaces.KVStore {
	return &kvStore{
		entries: make(map[types.CacheKey]*entry),
	}
}

func (r *kvStore) GetItem(ctx context.Context, key types.CacheKey) ([]byte, bool, error) {
	if key == "" {
		return nil, false, goerr.Wrap(repository.ErrInvalidInput, "cache key is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	if !ok || !logging.CtxTime(ctx).Before(e.expiresAt) {
		return nil, false, nil
	}

	return copyBytes(e.value), true, nil
}

func (r *kvStore) SetItem(ctx context.Context, key types.CacheKey, value []byte, ttl time.Duration) error {
	if err := repository.ValidateItem(key, ttl); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = &entry{
		value:     copyBytes(value),
		expiresAt: logging.CtxTime(ctx).Add(ttl),
	}

	return nil
}

func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
