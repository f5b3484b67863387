package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/domain/types"
	"github.com/satooru65536/projfeed/pkg/repository/firestore"
	"github.com/satooru65536/projfeed/pkg/repository/memory"
	"github.com/satooru65536/projfeed/pkg/repository/redis"
	"github.com/satooru65536/projfeed/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

type Cache struct {
	backend string

	redisAddr     string
	redisPassword string `masq:"secret"`
	redisDB       int64

	firestoreProjectID  string
	firestoreDatabaseID string
	firestoreCollection string
}

func (x *Cache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cache-backend",
			Usage:       "Cache backend [memory|redis|firestore]",
			Category:    "Cache",
			Value:       string(types.CacheBackendMemory),
			Destination: &x.backend,
			Sources:     cli.EnvVars("PROJFEED_CACHE_BACKEND"),
		},
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address (host:port)",
			Category:    "Cache",
			Destination: &x.redisAddr,
			Sources:     cli.EnvVars("PROJFEED_REDIS_ADDR"),
		},
		&cli.StringFlag{
			Name:        "redis-password",
			Usage:       "Redis password",
			Category:    "Cache",
			Destination: &x.redisPassword,
			Sources:     cli.EnvVars("PROJFEED_REDIS_PASSWORD"),
		},
		&cli.Int64Flag{
			Name:        "redis-db",
			Usage:       "Redis database number",
			Category:    "Cache",
			Destination: &x.redisDB,
			Sources:     cli.EnvVars("PROJFEED_REDIS_DB"),
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID",
			Category:    "Cache",
			Destination: &x.firestoreProjectID,
			Sources:     cli.EnvVars("PROJFEED_FIRESTORE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Cache",
			Value:       "(default)",
			Destination: &x.firestoreDatabaseID,
			Sources:     cli.EnvVars("PROJFEED_FIRESTORE_DATABASE_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection holding cache entries",
			Category:    "Cache",
			Value:       firestore.DefaultCollection,
			Destination: &x.firestoreCollection,
			Sources:     cli.EnvVars("PROJFEED_FIRESTORE_COLLECTION"),
		},
	}
}

// NewKVStore opens the selected backend. The returned function releases its connection and is never nil.
func (x *Cache) NewKVStore(ctx context.Context) (interfaces.KVStore, func(), error) {
	switch types.CacheBackend(x.backend) {
	case types.CacheBackendMemory, "":
		return memory.New(), func() {}, nil

	case types.CacheBackendRedis:
		if x.redisAddr == "" {
			return nil, nil, goerr.Wrap(types.ErrInvalidOption, "redis-addr is required for redis backend")
		}
		store, err := redis.New(ctx, redis.Config{
			Addr:     x.redisAddr,
			Password: x.redisPassword,
			DB:       int(x.redisDB),
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { safe.Close(store) }, nil

	case types.CacheBackendFirestore:
		if x.firestoreProjectID == "" {
			return nil, nil, goerr.Wrap(types.ErrInvalidOption, "firestore-project-id is required for firestore backend")
		}
		store, err := firestore.New(ctx, x.firestoreProjectID, x.firestoreDatabaseID, x.firestoreCollection)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { safe.Close(store) }, nil

	default:
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "unknown cache backend", goerr.V("backend", x.backend))
	}
}

func (x Cache) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Backend", x.backend),
		slog.String("RedisAddr", x.redisAddr),
		slog.Int("redisPassword.len", len(x.redisPassword)),
		slog.Int64("RedisDB", x.redisDB),
		slog.String("FirestoreProjectID", x.firestoreProjectID),
		slog.String("FirestoreDatabaseID", x.firestoreDatabaseID),
		slog.String("FirestoreCollection", x.firestoreCollection),
	)
}
