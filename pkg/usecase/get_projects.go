package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/domain/model"
	"github.com/satooru65536/projfeed/pkg/domain/types"
	"github.com/satooru65536/projfeed/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// GetProjects returns the user's recently active repositories. A cached list is returned as is, including an
// empty one. On a miss the list is rebuilt from GitHub and cached for the configured TTL. Upstream failures
// degrade the result instead of failing the call; only cache errors are returned.
func (x *UseCase) GetProjects(ctx context.Context) ([]*model.ProjectSummary, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx).With(slog.Any("cache_key", x.feed.CacheKey))

	if projects, ok, err := x.loadCachedProjects(ctx); err != nil {
		return nil, err
	} else if ok {
		logger.Debug("Cache hit", slog.Int("count", len(projects)))
		return projects, nil
	}

	logger.Info("Cache miss, building projects feed", slog.Any("username", x.feed.Username))

	events := x.listEvents(ctx)
	urls := x.feed.RecentRepoURLs(events, logging.CtxTime(ctx))
	projects := x.fetchProjects(ctx, urls)

	raw, err := json.Marshal(projects)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode projects")
	}
	if err := x.clients.KVStore().SetItem(ctx, x.feed.CacheKey, raw, x.feed.CacheTTL); err != nil {
		return nil, goerr.Wrap(err, "failed to cache projects", goerr.V("key", x.feed.CacheKey))
	}

	logger.Info("Built projects feed",
		slog.Int("events", len(events)),
		slog.Int("repos", len(urls)),
		slog.Int("projects", len(projects)),
		slog.Duration("ttl", x.feed.CacheTTL),
	)

	return projects, nil
}

func (x *UseCase) loadCachedProjects(ctx context.Context) ([]*model.ProjectSummary, bool, error) {
	raw, found, err := x.clients.KVStore().GetItem(ctx, x.feed.CacheKey)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to read cached projects", goerr.V("key", x.feed.CacheKey))
	}
	if !found {
		return nil, false, nil
	}

	var projects []*model.ProjectSummary
	if err := json.Unmarshal(raw, &projects); err != nil || projects == nil {
		logging.From(ctx).Warn("Ignore broken cache entry",
			slog.Any("key", x.feed.CacheKey),
			slog.Any("error", err),
		)
		return nil, false, nil
	}

	return projects, true, nil
}

// listEvents never fails: any error is logged and treated as an empty timeline.
func (x *UseCase) listEvents(ctx context.Context) []*model.ActivityEvent {
	events, err := x.clients.GitHub().ListUserEvents(ctx, &interfaces.ListUserEventsInput{
		Username: x.feed.Username,
		PerPage:  x.feed.EventsPerPage,
	})
	if err != nil {
		logging.From(ctx).Error("Failed to list user events",
			slog.Any("username", x.feed.Username),
			slog.Any("error", err),
		)
		return nil
	}
	return events
}

type fetchResult struct {
	project *model.ProjectSummary
	err     error
}

// fetchProjects fetches every repository concurrently and keeps the successful ones in input order.
func (x *UseCase) fetchProjects(ctx context.Context, urls []types.GitHubRepoURL) []*model.ProjectSummary {
	results := make([]fetchResult, len(urls))

	var eg errgroup.Group
	if x.feed.FetchConcurrency > 0 {
		eg.SetLimit(x.feed.FetchConcurrency)
	}

	for i, url := range urls {
		eg.Go(func() error {
			repo, err := x.clients.GitHub().GetRepository(ctx, &interfaces.GetRepositoryInput{URL: url})
			if err != nil {
				results[i] = fetchResult{err: err}
				return nil
			}
			results[i] = fetchResult{project: model.NewProjectSummary(repo)}
			return nil
		})
	}
	_ = eg.Wait()

	projects := make([]*model.ProjectSummary, 0, len(results))
	for i, result := range results {
		if result.err != nil {
			logging.From(ctx).Debug("Skip repository",
				slog.Any("url", urls[i]),
				slog.Any("error", result.err),
			)
			continue
		}
		projects = append(projects, result.project)
	}

	return projects
}
