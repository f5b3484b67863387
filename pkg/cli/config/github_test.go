package config_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/satooru65536/projfeed/pkg/cli/config"
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/domain/types"
	"golang.org/x/oauth2"
)

func TestGitHubTransport(t *testing.T) {
	t.Run("anonymous by default", func(t *testing.T) {
		var ghCfg config.GitHub
		parseFlags(t, ghCfg.Flags())

		tr := gt.R1(ghCfg.TransportForTest()).NoError(t)
		gt.V(t, tr).Equal(http.DefaultTransport)
	})

	t.Run("token uses oauth2 transport", func(t *testing.T) {
		var ghCfg config.GitHub
		parseFlags(t, ghCfg.Flags(), "--github-token", "test-token")

		tr := gt.R1(ghCfg.TransportForTest()).NoError(t)
		_, ok := tr.(*oauth2.Transport)
		gt.True(t, ok)
	})

	t.Run("token and app are mutually exclusive", func(t *testing.T) {
		var ghCfg config.GitHub
		parseFlags(t, ghCfg.Flags(),
			"--github-token", "test-token",
			"--github-app-id", "1",
			"--github-app-installation-id", "2",
			"--github-app-private-key", "key",
		)

		_, err := ghCfg.TransportForTest()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("partial app credentials are rejected", func(t *testing.T) {
		var ghCfg config.GitHub
		parseFlags(t, ghCfg.Flags(), "--github-app-id", "1")

		_, err := ghCfg.TransportForTest()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("malformed private key is rejected", func(t *testing.T) {
		var ghCfg config.GitHub
		parseFlags(t, ghCfg.Flags(),
			"--github-app-id", "1",
			"--github-app-installation-id", "2",
			"--github-app-private-key", "not a pem",
		)

		_, err := ghCfg.TransportForTest()
		gt.Error(t, err)
	})
}

func TestGitHubNew(t *testing.T) {
	t.Run("client sends user agent and token", func(t *testing.T) {
		var userAgent, authorization string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent = r.Header.Get("User-Agent")
			authorization = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		var ghCfg config.GitHub
		parseFlags(t, ghCfg.Flags(), "--github-api-url", srv.URL, "--github-token", "test-token")

		client := gt.R1(ghCfg.New("octocat")).NoError(t)
		events := gt.R1(client.ListUserEvents(context.Background(), &interfaces.ListUserEventsInput{
			Username: "octocat",
			PerPage:  30,
		})).NoError(t)

		gt.A(t, events).Length(0)
		gt.V(t, userAgent).Equal("octocat")
		gt.V(t, authorization).Equal("Bearer test-token")
	})
}
