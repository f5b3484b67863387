package gh

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/domain/model"
	"github.com/satooru65536/projfeed/pkg/domain/types"
	"github.com/satooru65536/projfeed/pkg/utils/logging"
)

const DefaultTimeout = 10 * time.Second

type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

type Option func(*config)

// WithHTTPClient replaces the underlying HTTP client, e.g. one carrying an auth transport.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

// WithBaseURL points the client at another REST API root such as GitHub Enterprise or a test server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithUserAgent sets the User-Agent header sent with every request. GitHub rejects requests without one.
func WithUserAgent(userAgent string) Option {
	return func(cfg *config) {
		cfg.userAgent = userAgent
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range options {
		opt(cfg)
	}

	client := github.NewClient(cfg.httpClient)

	if cfg.baseURL != "" {
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", cfg.baseURL), goerr.V("error", err))
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		client.BaseURL = u
	}

	if cfg.userAgent != "" {
		client.UserAgent = cfg.userAgent
	}

	return &Client{client: client}, nil
}

// ListUserEvents implements interfaces.GitHub.
func (x *Client) ListUserEvents(ctx context.Context, input *interfaces.ListUserEventsInput) ([]*model.ActivityEvent, error) {
	// https://docs.github.com/en/rest/activity/events#list-events-for-the-authenticated-user
	events, _, err := x.client.Activity.ListEventsPerformedByUser(ctx, input.Username.String(), false, &github.ListOptions{
		PerPage: input.PerPage,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list user events", goerr.V("username", input.Username))
	}

	result := make([]*model.ActivityEvent, 0, len(events))
	for _, ev := range events {
		result = append(result, &model.ActivityEvent{
			Type:      types.GitHubEventType(ev.GetType()),
			CreatedAt: ev.GetCreatedAt().Time,
			RepoURL:   types.GitHubRepoURL(ev.GetRepo().GetURL()),
		})
	}

	logging.From(ctx).Debug("Listed user events",
		slog.Any("username", input.Username),
		slog.Int("count", len(result)),
	)

	return result, nil
}

// GetRepository implements interfaces.GitHub. The URL must be on the same host as the API root so that
// credentials are never sent elsewhere.
func (x *Client) GetRepository(ctx context.Context, input *interfaces.GetRepositoryInput) (*model.RepositoryDetail, error) {
	u, err := url.Parse(string(input.URL))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "invalid repository URL", goerr.V("url", input.URL), goerr.V("error", err))
	}
	if u.Host != x.client.BaseURL.Host {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "repository URL is not on the GitHub API host",
			goerr.V("url", input.URL),
			goerr.V("host", x.client.BaseURL.Host),
		)
	}

	req, err := x.client.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build repository request", goerr.V("url", input.URL))
	}

	var repo github.Repository
	if _, err := x.client.Do(ctx, req, &repo); err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("url", input.URL))
	}

	if repo.GetName() == "" || repo.GetHTMLURL() == "" {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "repository lacks name or html_url", goerr.V("url", input.URL))
	}

	return &model.RepositoryDetail{
		Name:        repo.GetName(),
		Description: repo.Description,
		HTMLURL:     repo.GetHTMLURL(),
		Homepage:    repo.Homepage,
		PushedAt:    repo.GetPushedAt().Time,
		Topics:      repo.Topics,
	}, nil
}
