package interfaces

import (
	"context"
	"time"

	"github.com/satooru65536/projfeed/pkg/domain/types"
)

//go:generate moq -out ../mock/kv_store_mock.go -pkg mock . KVStore

// KVStore is a key/value store whose entries expire after a TTL
type KVStore interface {
	// GetItem returns the stored value. found is false when the key is absent or expired.
	GetItem(ctx context.Context, key types.CacheKey) (value []byte, found bool, err error)
	SetItem(ctx context.Context, key types.CacheKey, value []byte, ttl time.Duration) error
}
