package redis_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/satooru65536/projfeed/pkg/repository/redis"
	"github.com/satooru65536/projfeed/pkg/repository/testhelper"
	"github.com/satooru65536/projfeed/pkg/utils/safe"
	"github.com/satooru65536/projfeed/pkg/utils/testutil"
)

func TestRedisKVStore(t *testing.T) {
	addr := testutil.GetEnvOrSkip(t, "TEST_REDIS_ADDR")

	ctx := context.Background()
	store, err := redis.New(ctx, redis.Config{Addr: addr})
	gt.NoError(t, err)
	defer safe.Close(store)

	testhelper.TestAll(t, store)
}

func TestNewFailsWithoutServer(t *testing.T) {
	ctx := context.Background()
	// Port 1 is reserved and never has a Redis listening on it
	_, err := redis.New(ctx, redis.Config{Addr: "127.0.0.1:1"})
	gt.Error(t, err)
}
