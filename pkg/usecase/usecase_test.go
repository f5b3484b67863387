package usecase_test

import (
	"testing"

	"github.com/satooru65536/projfeed/pkg/domain/model"
	"github.com/satooru65536/projfeed/pkg/infra"
	"github.com/satooru65536/projfeed/pkg/usecase"
)

func TestNew(t *testing.T) {
	t.Run("create new usecase with default feed config", func(t *testing.T) {
		// This test verifies that the usecase can be created with proper clients
		// The actual behavior is tested in individual method tests
		clients := infra.New()
		uc := usecase.New(clients)

		// Test that methods are accessible (compile-time check)
		_ = uc.GetProjects
	})

	t.Run("create new usecase with custom feed config", func(t *testing.T) {
		cfg := model.DefaultFeedConfig()
		cfg.Username = "octocat"
		uc := usecase.New(infra.New(), usecase.WithFeedConfig(cfg))
		_ = uc.GetProjects
	})
}
