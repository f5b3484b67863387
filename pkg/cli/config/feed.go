package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/satooru65536/projfeed/pkg/domain/model"
	"github.com/satooru65536/projfeed/pkg/domain/types"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type Feed struct {
	username         string
	cacheKey         string
	cacheTTL         time.Duration
	window           time.Duration
	ignoreEventTypes []string
	eventsPerPage    int64
	fetchConcurrency int64
	configFile       string
}

func (x *Feed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-user",
			Usage:       "GitHub user whose activity builds the feed",
			Category:    "Feed",
			Value:       model.DefaultUsername.String(),
			Destination: &x.username,
			Sources:     cli.EnvVars("PROJFEED_GITHUB_USER"),
		},
		&cli.StringFlag{
			Name:        "cache-key",
			Usage:       "Cache key of the projects list",
			Category:    "Feed",
			Value:       model.DefaultCacheKey.String(),
			Destination: &x.cacheKey,
			Sources:     cli.EnvVars("PROJFEED_CACHE_KEY"),
		},
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "Lifetime of the cached projects list",
			Category:    "Feed",
			Value:       model.DefaultCacheTTL,
			Destination: &x.cacheTTL,
			Sources:     cli.EnvVars("PROJFEED_CACHE_TTL"),
		},
		&cli.DurationFlag{
			Name:        "window",
			Usage:       "Only events newer than this contribute a project",
			Category:    "Feed",
			Value:       model.DefaultWindow,
			Destination: &x.window,
			Sources:     cli.EnvVars("PROJFEED_WINDOW"),
		},
		&cli.StringSliceFlag{
			Name:        "ignore-event-type",
			Usage:       "Event type that never contributes a project (repeatable)",
			Category:    "Feed",
			Value:       []string{string(types.WatchEvent)},
			Destination: &x.ignoreEventTypes,
			Sources:     cli.EnvVars("PROJFEED_IGNORE_EVENT_TYPE"),
		},
		&cli.Int64Flag{
			Name:        "events-per-page",
			Usage:       "Number of events requested from GitHub",
			Category:    "Feed",
			Value:       model.DefaultEventsPerPage,
			Destination: &x.eventsPerPage,
			Sources:     cli.EnvVars("PROJFEED_EVENTS_PER_PAGE"),
		},
		&cli.Int64Flag{
			Name:        "fetch-concurrency",
			Usage:       "Max parallel repository fetches, 0 means unlimited",
			Category:    "Feed",
			Destination: &x.fetchConcurrency,
			Sources:     cli.EnvVars("PROJFEED_FETCH_CONCURRENCY"),
		},
		&cli.StringFlag{
			Name:        "feed-config",
			Usage:       "YAML file overriding feed settings",
			Category:    "Feed",
			Destination: &x.configFile,
			Sources:     cli.EnvVars("PROJFEED_FEED_CONFIG"),
		},
	}
}

// Build returns the validated feed settings. Non-zero fields of the YAML file take precedence over flags.
func (x *Feed) Build() (model.FeedConfig, error) {
	cfg := model.FeedConfig{
		Username:         types.GitHubUsername(x.username),
		CacheKey:         types.CacheKey(x.cacheKey),
		CacheTTL:         x.cacheTTL,
		Window:           x.window,
		EventsPerPage:    int(x.eventsPerPage),
		FetchConcurrency: int(x.fetchConcurrency),
	}
	for _, t := range x.ignoreEventTypes {
		cfg.IgnoreEventTypes = append(cfg.IgnoreEventTypes, types.GitHubEventType(t))
	}

	if x.configFile != "" {
		file, err := loadFeedFile(x.configFile)
		if err != nil {
			return model.FeedConfig{}, err
		}
		mergeFeedConfig(&cfg, file)
	}

	if err := cfg.Validate(); err != nil {
		return model.FeedConfig{}, err
	}

	return cfg, nil
}

func loadFeedFile(path string) (*model.FeedConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read feed config", goerr.V("path", path))
	}

	var file model.FeedConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse feed config",
			goerr.V("path", path),
			goerr.V("error", err),
		)
	}

	return &file, nil
}

func mergeFeedConfig(dst *model.FeedConfig, src *model.FeedConfig) {
	if src.Username != "" {
		dst.Username = src.Username
	}
	if src.CacheKey != "" {
		dst.CacheKey = src.CacheKey
	}
	if src.CacheTTL != 0 {
		dst.CacheTTL = src.CacheTTL
	}
	if src.Window != 0 {
		dst.Window = src.Window
	}
	if src.IgnoreEventTypes != nil {
		dst.IgnoreEventTypes = src.IgnoreEventTypes
	}
	if src.EventsPerPage != 0 {
		dst.EventsPerPage = src.EventsPerPage
	}
	if src.FetchConcurrency != 0 {
		dst.FetchConcurrency = src.FetchConcurrency
	}
}

func (x Feed) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Username", x.username),
		slog.String("CacheKey", x.cacheKey),
		slog.Duration("CacheTTL", x.cacheTTL),
		slog.Duration("Window", x.window),
		slog.Any("IgnoreEventTypes", x.ignoreEventTypes),
		slog.Int64("EventsPerPage", x.eventsPerPage),
		slog.Int64("FetchConcurrency", x.fetchConcurrency),
		slog.String("ConfigFile", x.configFile),
	)
}
