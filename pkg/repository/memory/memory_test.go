package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/satooru65536/projfeed/pkg/repository/memory"
	"github.com/satooru65536/projfeed/pkg/repository/testhelper"
	"github.com/satooru65536/projfeed/pkg/utils/logging"
)

func TestMemoryKVStore(t *testing.T) {
	store := memory.New()
	testhelper.TestAll(t, store)
}

func TestMemoryKVStoreClock(t *testing.T) {
	store := memory.New()
	base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) context.Context {
		return logging.CtxWithTime(context.Background(), func() time.Time { return base.Add(d) })
	}

	gt.NoError(t, store.SetItem(at(0), "projects", []byte(`[]`), time.Hour))

	t.Run("entry is present just before expiry", func(t *testing.T) {
		value, found, err := store.GetItem(at(time.Hour-time.Nanosecond), "projects")
		gt.NoError(t, err)
		gt.True(t, found)
		gt.V(t, string(value)).Equal(`[]`)
	})

	t.Run("entry is absent at expiry", func(t *testing.T) {
		_, found, err := store.GetItem(at(time.Hour), "projects")
		gt.NoError(t, err)
		gt.False(t, found)
	})

	t.Run("stored value is not aliased", func(t *testing.T) {
		value := []byte(`["a"]`)
		gt.NoError(t, store.SetItem(at(0), "aliased", value, time.Hour))
		value[2] = 'b'

		got, found, err := store.GetItem(at(0), "aliased")
		gt.NoError(t, err)
		gt.True(t, found)
		gt.V(t, string(got)).Equal(`["a"]`)
	})
}
