package config

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/satooru65536/projfeed/pkg/domain/types"
	"github.com/satooru65536/projfeed/pkg/infra/gh"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

type GitHub struct {
	apiURL     string
	token      types.GitHubToken `masq:"secret"`
	timeout    time.Duration
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API root, e.g. for GitHub Enterprise",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("PROJFEED_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token for authenticated requests (optional)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("PROJFEED_GITHUB_TOKEN"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of each GitHub request",
			Category:    "GitHub",
			Value:       gh.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("PROJFEED_GITHUB_TIMEOUT"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (optional)",
			Category:    "GitHub App",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("PROJFEED_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("PROJFEED_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("PROJFEED_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHub) appEnabled() bool {
	return x.appID != 0 || x.installID != 0 || x.privateKey != ""
}

// New builds a GitHub client that identifies itself with the given user agent. Requests are anonymous unless a
// token or GitHub App credentials are configured.
func (x *GitHub) New(userAgent string) (*gh.Client, error) {
	transport, err := x.transport()
	if err != nil {
		return nil, err
	}

	timeout := x.timeout
	if timeout <= 0 {
		timeout = gh.DefaultTimeout
	}

	options := []gh.Option{
		gh.WithHTTPClient(&http.Client{Transport: transport, Timeout: timeout}),
		gh.WithUserAgent(userAgent),
	}
	if x.apiURL != "" {
		options = append(options, gh.WithBaseURL(x.apiURL))
	}

	return gh.New(options...)
}

func (x *GitHub) transport() (http.RoundTripper, error) {
	base := http.DefaultTransport

	if x.appEnabled() {
		if x.token != "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token and GitHub App are mutually exclusive")
		}
		if x.appID == 0 || x.installID == 0 || x.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App requires app ID, installation ID and private key",
				goerr.V("appID", x.appID),
				goerr.V("installID", x.installID),
			)
		}

		itr, err := ghinstallation.New(base, int64(x.appID), int64(x.installID), []byte(x.privateKey))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport", goerr.V("appID", x.appID))
		}
		if x.apiURL != "" {
			itr.BaseURL = strings.TrimSuffix(x.apiURL, "/")
		}
		return itr, nil
	}

	if x.token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(x.token)})
		return &oauth2.Transport{Source: oauth2.ReuseTokenSource(nil, src), Base: base}, nil
	}

	return base, nil
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("APIURL", x.apiURL),
		slog.Int("Token.len", len(x.token)),
		slog.Duration("Timeout", x.timeout),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}

