package model

import (
	"time"

	"github.com/satooru65536/projfeed/pkg/domain/types"
)

// ActivityEvent is a single entry of a user's public GitHub timeline.
type ActivityEvent struct {
	Type      types.GitHubEventType
	CreatedAt time.Time
	RepoURL   types.GitHubRepoURL
}

// RepositoryDetail is the subset of GitHub repository metadata used to build a ProjectSummary.
type RepositoryDetail struct {
	Name        string
	Description *string
	HTMLURL     string
	Homepage    *string
	PushedAt    time.Time
	Topics      []string
}
