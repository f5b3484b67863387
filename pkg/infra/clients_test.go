package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/domain/mock"
	"github.com/satooru65536/projfeed/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// GitHub should be nil without configuration
		gt.V(t, clients.GitHub()).Equal(nil)
		// KVStore falls back to the in-memory store
		gt.V(t, clients.KVStore() == nil).Equal(false)
		// Verify it's the same instance when called again
		gt.V(t, clients.KVStore()).Equal(clients.KVStore())
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(interfaces.GitHub(mockGH))
	})

	t.Run("WithKVStore option sets KV store", func(t *testing.T) {
		mockKV := &mock.KVStoreMock{}
		clients := infra.New(infra.WithKVStore(mockKV))
		gt.V(t, clients.KVStore()).Equal(interfaces.KVStore(mockKV))
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockKV := &mock.KVStoreMock{}

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithKVStore(mockKV),
		)

		gt.V(t, clients.GitHub()).Equal(interfaces.GitHub(mockGH))
		gt.V(t, clients.KVStore()).Equal(interfaces.KVStore(mockKV))
	})
}
