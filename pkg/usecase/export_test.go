package usecase

import (
	"context"

	"github.com/satooru65536/projfeed/pkg/domain/model"
	"github.com/satooru65536/projfeed/pkg/domain/types"
)

// Export unexported functions for testing
func (x *UseCase) FetchProjectsForTest(ctx context.Context, urls []types.GitHubRepoURL) []*model.ProjectSummary {
	return x.fetchProjects(ctx, urls)
}
