package model

import (
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/satooru65536/projfeed/pkg/domain/types"
)

const (
	DefaultUsername      types.GitHubUsername = "SatooRu65536"
	DefaultCacheKey      types.CacheKey       = "projects"
	DefaultCacheTTL                           = time.Hour
	DefaultWindow                             = 14 * 24 * time.Hour
	DefaultEventsPerPage                      = 30
	MaxEventsPerPage                          = 100
)

// FeedConfig holds the settings of the projects feed pipeline.
type FeedConfig struct {
	Username         types.GitHubUsername    `yaml:"username"`
	CacheKey         types.CacheKey          `yaml:"cache_key"`
	CacheTTL         time.Duration           `yaml:"cache_ttl"`
	Window           time.Duration           `yaml:"window"`
	IgnoreEventTypes []types.GitHubEventType `yaml:"ignore_event_types"`
	EventsPerPage    int                     `yaml:"events_per_page"`
	FetchConcurrency int                     `yaml:"fetch_concurrency"`
}

func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		Username:         DefaultUsername,
		CacheKey:         DefaultCacheKey,
		CacheTTL:         DefaultCacheTTL,
		Window:           DefaultWindow,
		IgnoreEventTypes: []types.GitHubEventType{types.WatchEvent},
		EventsPerPage:    DefaultEventsPerPage,
	}
}

func (x *FeedConfig) Validate() error {
	if x.Username == "" {
		return goerr.Wrap(types.ErrInvalidOption, "GitHub username is empty")
	}
	if x.CacheKey == "" {
		return goerr.Wrap(types.ErrInvalidOption, "cache key is empty")
	}
	if x.CacheTTL <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "cache TTL must be positive", goerr.V("ttl", x.CacheTTL))
	}
	if x.Window <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "activity window must be positive", goerr.V("window", x.Window))
	}
	if x.EventsPerPage < 1 || x.EventsPerPage > MaxEventsPerPage {
		return goerr.Wrap(types.ErrInvalidOption, "events per page is out of range",
			goerr.V("eventsPerPage", x.EventsPerPage),
			goerr.V("max", MaxEventsPerPage),
		)
	}
	if x.FetchConcurrency < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "fetch concurrency must not be negative",
			goerr.V("fetchConcurrency", x.FetchConcurrency),
		)
	}
	return nil
}

// Accept reports whether the event should contribute a repository to the feed. Only events created strictly
// after now-Window pass.
func (x *FeedConfig) Accept(ev *ActivityEvent, now time.Time) bool {
	if slices.Contains(x.IgnoreEventTypes, ev.Type) {
		return false
	}
	return ev.CreatedAt.After(now.Add(-x.Window))
}

// RecentRepoURLs filters events and returns the repository URLs they reference, deduplicated in first-seen order.
func (x *FeedConfig) RecentRepoURLs(events []*ActivityEvent, now time.Time) []types.GitHubRepoURL {
	var urls []types.GitHubRepoURL
	seen := make(map[types.GitHubRepoURL]struct{})

	for _, ev := range events {
		if ev == nil || ev.RepoURL == "" || !x.Accept(ev, now) {
			continue
		}
		if _, ok := seen[ev.RepoURL]; ok {
			continue
		}
		seen[ev.RepoURL] = struct{}{}
		urls = append(urls, ev.RepoURL)
	}

	return urls
}
