package cli

import (
	"context"

	"github.com/satooru65536/projfeed/pkg/cli/config"
	"github.com/satooru65536/projfeed/pkg/infra"
	"github.com/satooru65536/projfeed/pkg/usecase"
)

// newUseCase wires the configured GitHub client and cache backend into the projects feed. The returned closer
// releases the cache backend.
func newUseCase(ctx context.Context, feed *config.Feed, github *config.GitHub, cache *config.Cache) (*usecase.UseCase, func(), error) {
	feedCfg, err := feed.Build()
	if err != nil {
		return nil, nil, err
	}

	ghClient, err := github.New(feedCfg.Username.String())
	if err != nil {
		return nil, nil, err
	}

	kvStore, closer, err := cache.NewKVStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	clients := infra.New(
		infra.WithGitHub(ghClient),
		infra.WithKVStore(kvStore),
	)

	return usecase.New(clients, usecase.WithFeedConfig(feedCfg)), closer, nil
}
