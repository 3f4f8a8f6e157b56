package cli

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/movieshelf/internal/client/api"
	"github.com/iudanet/movieshelf/internal/client/live"
	clientsync "github.com/iudanet/movieshelf/internal/client/sync"
)

// blockingChannel канал, который подключается один раз и ждет отмены
func blockingChannel() *LiveChannelMock {
	return &LiveChannelMock{
		RunFunc: func(ctx context.Context, onConnect func(ctx context.Context)) error {
			onConnect(ctx)
			<-ctx.Done()
			return nil
		},
		StartGenerationFunc: func(ctx context.Context) error { return nil },
		StopGenerationFunc:  func(ctx context.Context) error { return nil },
	}
}

func TestCli_WatchGenerate(t *testing.T) {
	channel := blockingChannel()

	var replays atomic.Int32
	coord := &CoordinatorMock{
		ReplayPendingFunc: func(ctx context.Context) (bool, error) {
			replays.Add(1)
			return true, nil
		},
	}
	monitor := &ConnectivityMock{
		RunFunc: func(ctx context.Context, onOnline func(ctx context.Context)) {
			onOnline(ctx)
		},
	}

	var optCount int
	c := newTestCli(newTestTerm(), Deps{
		Auth:         loggedIn(),
		Coordinator:  coord,
		Connectivity: monitor,
		Live: func(opts ...live.Option) (LiveChannel, error) {
			optCount = len(opts)
			return channel, nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, "watch", []string{"--generate"}) }()

	require.Eventually(t, func() bool { return len(channel.StartGenerationCalls()) == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return replays.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}

	assert.Len(t, channel.StopGenerationCalls(), 1)
	assert.Equal(t, 2, optCount)
}

func TestCli_WatchWithoutGenerate(t *testing.T) {
	channel := blockingChannel()
	c := newTestCli(newTestTerm(), Deps{
		Auth:         loggedIn(),
		Connectivity: fixedConnectivity(online),
		Live:         func(opts ...live.Option) (LiveChannel, error) { return channel, nil },
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, c.Run(ctx, "watch", nil))
	assert.Empty(t, channel.StartGenerationCalls())
	assert.Empty(t, channel.StopGenerationCalls())
}

func TestCli_WatchUnauthorized(t *testing.T) {
	channel := &LiveChannelMock{
		RunFunc: func(ctx context.Context, onConnect func(ctx context.Context)) error {
			return api.ErrUnauthorized
		},
	}
	c := newTestCli(newTestTerm(), Deps{
		Auth:         loggedIn(),
		Connectivity: fixedConnectivity(clientsync.ConnectivityState{}),
		Live:         func(opts ...live.Option) (LiveChannel, error) { return channel, nil },
	})

	err := c.Run(context.Background(), "watch", nil)
	require.ErrorIs(t, err, api.ErrUnauthorized)
}
