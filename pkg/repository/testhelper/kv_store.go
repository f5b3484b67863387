package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/domain/types"
	"github.com/satooru65536/projfeed/pkg/repository"
)

// TestAll runs all test cases for KVStore
// This is the main entry point for testing any KVStore implementation
func TestAll(t *testing.T, store interfaces.KVStore) {
	t.Run("MissingKey", func(t *testing.T) {
		TestMissingKey(t, store)
	})
	t.Run("SetAndGet", func(t *testing.T) {
		TestSetAndGet(t, store)
	})
	t.Run("EmptyValueIsPresent", func(t *testing.T) {
		TestEmptyValueIsPresent(t, store)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, store)
	})
	t.Run("Expiration", func(t *testing.T) {
		TestExpiration(t, store)
	})
	t.Run("InvalidInput", func(t *testing.T) {
		TestInvalidInput(t, store)
	})
}

func newKey(prefix string) types.CacheKey {
	return types.CacheKey(fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8]))
}

// TestMissingKey tests that an unknown key is reported as absent without error
func TestMissingKey(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()

	value, found, err := store.GetItem(ctx, newKey("missing"))
	gt.NoError(t, err)
	gt.False(t, found)
	gt.A(t, value).Length(0)
}

// TestSetAndGet tests a basic round trip
func TestSetAndGet(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()
	key := newKey("projects")
	payload := []byte(`[{"name":"a","tags":["ts","web"]}]`)

	gt.NoError(t, store.SetItem(ctx, key, payload, time.Hour))

	value, found, err := store.GetItem(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, string(value)).Equal(string(payload))
}

// TestEmptyValueIsPresent tests that a stored empty value is distinguishable from an absent key
func TestEmptyValueIsPresent(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()

	t.Run("empty JSON array", func(t *testing.T) {
		key := newKey("empty-list")
		gt.NoError(t, store.SetItem(ctx, key, []byte(`[]`), time.Hour))

		value, found, err := store.GetItem(ctx, key)
		gt.NoError(t, err)
		gt.True(t, found)
		gt.V(t, string(value)).Equal(`[]`)
	})

	t.Run("zero-length value", func(t *testing.T) {
		key := newKey("zero-length")
		gt.NoError(t, store.SetItem(ctx, key, []byte{}, time.Hour))

		value, found, err := store.GetItem(ctx, key)
		gt.NoError(t, err)
		gt.True(t, found)
		gt.A(t, value).Length(0)
	})
}

// TestOverwrite tests that SetItem replaces the previous value
func TestOverwrite(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()
	key := newKey("overwrite")

	gt.NoError(t, store.SetItem(ctx, key, []byte(`["old"]`), time.Hour))
	gt.NoError(t, store.SetItem(ctx, key, []byte(`["new"]`), time.Hour))

	value, found, err := store.GetItem(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, string(value)).Equal(`["new"]`)
}

// TestExpiration tests that an entry disappears after its TTL. It waits in real time because some backends
// expire entries on the server side.
func TestExpiration(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()
	key := newKey("expire")

	gt.NoError(t, store.SetItem(ctx, key, []byte(`["a"]`), time.Second))

	_, found, err := store.GetItem(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)

	time.Sleep(1500 * time.Millisecond)

	_, found, err = store.GetItem(ctx, key)
	gt.NoError(t, err)
	gt.False(t, found)
}

// TestInvalidInput tests argument validation
func TestInvalidInput(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()

	t.Run("empty key on set", func(t *testing.T) {
		err := store.SetItem(ctx, "", []byte(`[]`), time.Hour)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})

	t.Run("empty key on get", func(t *testing.T) {
		_, _, err := store.GetItem(ctx, "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})

	t.Run("non-positive TTL", func(t *testing.T) {
		err := store.SetItem(ctx, newKey("ttl"), []byte(`[]`), 0)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})
}
