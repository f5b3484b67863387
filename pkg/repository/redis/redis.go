package redis

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/domain/types"
	"github.com/satooru65536/projfeed/pkg/repository"
)

// KVStore keeps items in Redis and lets the server expire them.
type KVStore struct {
	client *redis.Client
}

var _ interfaces.KVStore = (*KVStore)(nil)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, cfg Config) (*KVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, goerr.Wrap(err, "failed to connect to Redis", goerr.V("addr", cfg.Addr), goerr.V("db", cfg.DB))
	}

	return &KVStore{client: client}, nil
}

func (x *KVStore) GetItem(ctx context.Context, key types.CacheKey) ([]byte, bool, error) {
	if key == "" {
		return nil, false, goerr.Wrap(repository.ErrInvalidInput, "cache key is empty")
	}

	value, err := x.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get item from Redis", goerr.V("key", key))
	}

	return value, true, nil
}

func (x *KVStore) SetItem(ctx context.Context, key types.CacheKey, value []byte, ttl time.Duration) error {
	if err := repository.ValidateItem(key, ttl); err != nil {
		return err
	}

	if err := x.client.Set(ctx, key.String(), value, ttl).Err(); err != nil {
		return goerr.Wrap(err, "failed to set item to Redis", goerr.V("key", key), goerr.V("ttl", ttl))
	}

	return nil
}

func (x *KVStore) Close() error {
	return x.client.Close()
}
