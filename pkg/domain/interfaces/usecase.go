package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/satooru65536/projfeed/pkg/domain/model"
)

type UseCase interface {
	GetProjects(ctx context.Context) ([]*model.ProjectSummary, error)
}
