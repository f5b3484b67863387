package repository

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/satooru65536/projfeed/pkg/domain/types"
)

var (
	ErrInvalidInput = goerr.New("invalid input")
)

// ValidateItem checks the arguments shared by every KVStore.SetItem implementation.
func ValidateItem(key types.CacheKey, ttl time.Duration) error {
	if key == "" {
		return goerr.Wrap(ErrInvalidInput, "cache key is empty")
	}
	if ttl <= 0 {
		return goerr.Wrap(ErrInvalidInput, "TTL must be positive", goerr.V("key", key), goerr.V("ttl", ttl))
	}
	return nil
}
