package usecase

import (
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/domain/model"
	"github.com/satooru65536/projfeed/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	feed    model.FeedConfig
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithFeedConfig replaces the default feed settings.
func WithFeedConfig(cfg model.FeedConfig) Option {
	return func(x *UseCase) {
		x.feed = cfg
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		feed:    model.DefaultFeedConfig(),
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
