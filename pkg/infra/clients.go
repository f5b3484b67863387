package infra

import (
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/repository/memory"
)

type Clients struct {
	github  interfaces.GitHub
	kvStore interfaces.KVStore
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		kvStore: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) KVStore() interfaces.KVStore {
	return x.kvStore
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithKVStore(store interfaces.KVStore) Option {
	return func(x *Clients) {
		x.kvStore = store
	}
}
