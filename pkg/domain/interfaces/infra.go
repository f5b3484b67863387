package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/satooru65536/projfeed/pkg/domain/model"
	"github.com/satooru65536/projfeed/pkg/domain/types"
)

type GitHub interface {
	// ListUserEvents returns the most recent page of events performed by the user.
	ListUserEvents(ctx context.Context, input *ListUserEventsInput) ([]*model.ActivityEvent, error)
	// GetRepository fetches repository metadata from an API URL taken from an event.
	GetRepository(ctx context.Context, input *GetRepositoryInput) (*model.RepositoryDetail, error)
}

type ListUserEventsInput struct {
	Username types.GitHubUsername
	PerPage  int
}

type GetRepositoryInput struct {
	URL types.GitHubRepoURL
}
