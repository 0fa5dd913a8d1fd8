package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/events"
)

type fieldEvent struct {
	Target string
	Kind   string
}

func receive[T any](t *testing.T, sub events.Subscription[T]) (T, bool) {
	t.Helper()
	select {
	case v, ok := <-sub.C():
		return v, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	var zero T
	return zero, false
}

func TestHub_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("subscription has unique id", func(t *testing.T) {
		t.Parallel()
		hub := events.NewHub[fieldEvent]()
		defer hub.Close()

		a := hub.Subscribe(context.Background())
		b := hub.Subscribe(context.Background())
		assert.NotEmpty(t, a.ID())
		assert.NotEqual(t, a.ID(), b.ID())
		assert.Equal(t, 2, hub.Len())
	})

	t.Run("subscribe after close returns closed subscription", func(t *testing.T) {
		t.Parallel()
		hub := events.NewHub[fieldEvent]()
		require.NoError(t, hub.Close())

		sub := hub.Subscribe(context.Background())
		_, ok := <-sub.C()
		assert.False(t, ok)
		assert.Equal(t, 0, hub.Len())
	})

	t.Run("context cancellation releases subscription", func(t *testing.T) {
		t.Parallel()
		hub := events.NewHub[fieldEvent]()
		defer hub.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := hub.Subscribe(ctx)
		cancel()

		_, ok := receive(t, sub)
		assert.False(t, ok)
		assert.Eventually(t, func() bool { return hub.Len() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()
		hub := events.NewHub[fieldEvent]()
		defer hub.Close()

		sub := hub.Subscribe(context.Background())
		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())
		assert.Equal(t, 0, hub.Len())
	})
}

func TestHub_Notify(t *testing.T) {
	t.Parallel()

	t.Run("fans out to every subscriber", func(t *testing.T) {
		t.Parallel()
		hub := events.NewHub[fieldEvent]()
		defer hub.Close()

		ctx := context.Background()
		a := hub.Subscribe(ctx)
		b := hub.Subscribe(ctx)

		require.NoError(t, hub.Notify(ctx, fieldEvent{Target: "email", Kind: "start"}))

		got, ok := receive(t, a)
		require.True(t, ok)
		assert.Equal(t, "email", got.Target)
		got, ok = receive(t, b)
		require.True(t, ok)
		assert.Equal(t, "start", got.Kind)
	})

	t.Run("filter drops unrelated values", func(t *testing.T) {
		t.Parallel()
		hub := events.NewHub[fieldEvent]()
		defer hub.Close()

		ctx := context.Background()
		sub := hub.Subscribe(ctx, events.WithFilter(func(e fieldEvent) bool {
			return e.Target == "password"
		}))

		require.NoError(t, hub.Notify(ctx, fieldEvent{Target: "email"}))
		require.NoError(t, hub.Notify(ctx, fieldEvent{Target: "password"}))

		got, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, "password", got.Target)
		assert.Equal(t, 1, hub.Len())
	})

	t.Run("slow subscriber is dropped without blocking", func(t *testing.T) {
		t.Parallel()
		hub := events.NewHub[fieldEvent](events.WithBufferSize(1))
		defer hub.Close()

		ctx := context.Background()
		slow := hub.Subscribe(ctx)
		fast := hub.Subscribe(ctx, events.WithSubscriptionBuffer[fieldEvent](8))

		for range 3 {
			require.NoError(t, hub.Notify(ctx, fieldEvent{Target: "name"}))
		}

		assert.Equal(t, 1, hub.Len())
		_, ok := receive(t, slow)
		assert.True(t, ok, "buffered value is still readable")
		_, ok = receive(t, slow)
		assert.False(t, ok)

		for range 3 {
			_, ok := receive(t, fast)
			assert.True(t, ok)
		}
	})

	t.Run("notify after close fails", func(t *testing.T) {
		t.Parallel()
		hub := events.NewHub[fieldEvent]()
		require.NoError(t, hub.Close())
		require.NoError(t, hub.Close())

		err := hub.Notify(context.Background(), fieldEvent{})
		assert.ErrorIs(t, err, events.ErrHubClosed)
	})
}
