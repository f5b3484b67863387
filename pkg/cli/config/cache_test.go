package config_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/satooru65536/projfeed/pkg/cli/config"
	"github.com/satooru65536/projfeed/pkg/domain/types"
)

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("memory backend by default", func(t *testing.T) {
		var cache config.Cache
		parseFlags(t, cache.Flags())

		store, closer, err := cache.NewKVStore(ctx)
		gt.NoError(t, err)
		defer closer()

		gt.NoError(t, store.SetItem(ctx, "projects", []byte(`[]`), time.Hour))
		value, found, err := store.GetItem(ctx, "projects")
		gt.NoError(t, err)
		gt.True(t, found)
		gt.V(t, string(value)).Equal(`[]`)
	})

	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown backend", args: []string{"--cache-backend", "memcached"}},
		{name: "redis without address", args: []string{"--cache-backend", "redis"}},
		{name: "firestore without project", args: []string{"--cache-backend", "firestore"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name+" is rejected", func(t *testing.T) {
			var cache config.Cache
			parseFlags(t, cache.Flags(), tc.args...)

			_, _, err := cache.NewKVStore(ctx)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		})
	}
}
