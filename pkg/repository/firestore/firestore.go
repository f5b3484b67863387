package firestore

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/domain/types"
	"github.com/satooru65536/projfeed/pkg/repository"
	"github.com/satooru65536/projfeed/pkg/utils/logging"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const DefaultCollection = "kv"

// KVStore keeps items as Firestore documents. Firestore TTL policies delete expired documents lazily, so
// ExpiresAt is also checked on every read.
type KVStore struct {
	client     *firestore.Client
	collection string
}

var _ interfaces.KVStore = (*KVStore)(nil)

type document struct {
	Value     []byte    `firestore:"value"`
	ExpiresAt time.Time `firestore:"expires_at"`
}

// New creates a new Firestore-based key/value store
func New(ctx context.Context, projectID, databaseID, collection string) (*KVStore, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	if collection == "" {
		collection = DefaultCollection
	}

	return &KVStore{
		client:     client,
		collection: collection,
	}, nil
}

// ToDocID converts a cache key to a Firestore-safe document ID.
// "/" is a path separator in Firestore, so it is replaced with ":".
func ToDocID(key types.CacheKey) (string, error) {
	if key == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "cache key is empty")
	}

	id := strings.ReplaceAll(key.String(), "/", ":")
	if id == "." || id == ".." || (strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__")) {
		return "", goerr.Wrap(repository.ErrInvalidInput, "cache key is reserved in Firestore", goerr.V("key", key))
	}

	return id, nil
}

func (x *KVStore) GetItem(ctx context.Context, key types.CacheKey) ([]byte, bool, error) {
	docID, err := ToDocID(key)
	if err != nil {
		return nil, false, err
	}

	snap, err := x.client.Collection(x.collection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, goerr.Wrap(err, "failed to get item",
			goerr.V("collection", x.collection),
			goerr.V("key", key),
		)
	}

	var doc document
	if err := snap.DataTo(&doc); err != nil {
		return nil, false, goerr.Wrap(err, "failed to decode item",
			goerr.V("collection", x.collection),
			goerr.V("key", key),
		)
	}

	if !logging.CtxTime(ctx).Before(doc.ExpiresAt) {
		return nil, false, nil
	}

	if doc.Value == nil {
		doc.Value = []byte{}
	}
	return doc.Value, true, nil
}

func (x *KVStore) SetItem(ctx context.Context, key types.CacheKey, value []byte, ttl time.Duration) error {
	if err := repository.ValidateItem(key, ttl); err != nil {
		return err
	}
	docID, err := ToDocID(key)
	if err != nil {
		return err
	}

	doc := &document{
		Value:     value,
		ExpiresAt: logging.CtxTime(ctx).Add(ttl).UTC(),
	}
	if _, err := x.client.Collection(x.collection).Doc(docID).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to set item",
			goerr.V("collection", x.collection),
			goerr.V("key", key),
		)
	}

	return nil
}

func (x *KVStore) Close() error {
	return x.client.Close()
}
