package types

import "log/slog"

type (
	GitHubUsername      string
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubEventType     string
	GitHubRepoURL       string
)

const (
	WatchEvent GitHubEventType = "WatchEvent"
	PushEvent  GitHubEventType = "PushEvent"
)

func (x GitHubUsername) String() string { return string(x) }

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
