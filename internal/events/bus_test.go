package events

import (
	"context"
	"testing"
	"time"

	"github.com/orgball2608/scenefeed/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeAndCleanUp(t *testing.T) {
	bus := NewBus()
	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())

	bus.Subscribe(ctx1, "me@x.com")
	bus.Subscribe(ctx2, "me@x.com")
	assert.Equal(t, 2, bus.SubscriptionCount())

	cancel1()
	cancel2()

	assert.Eventually(t, func() bool { return bus.SubscriptionCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestPublishOnlyToViewer(t *testing.T) {
	bus := NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mine, _ := bus.Subscribe(ctx, "me@x.com")
	theirs, _ := bus.Subscribe(ctx, "you@x.com")

	n := bus.Publish(FollowStatusChanged{ViewerEmail: "me@x.com", CuratorEmail: "dj@x.com", IsFollowing: true})

	assert.Equal(t, 1, n)
	select {
	case evt := <-mine:
		assert.Equal(t, "dj@x.com", evt.CuratorEmail)
	default:
		t.Fatal("expected an event")
	}
	assert.Empty(t, theirs)
}

func TestPublishLastUpdateWins(t *testing.T) {
	bus := NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, _ := bus.Subscribe(ctx, "me@x.com")

	bus.Publish(FollowStatusChanged{ViewerEmail: "me@x.com", CuratorEmail: "dj@x.com", IsFollowing: true})
	bus.Publish(FollowStatusChanged{ViewerEmail: "me@x.com", CuratorEmail: "dj@x.com", IsFollowing: false})

	evt := <-ch
	assert.False(t, evt.IsFollowing)
	assert.Empty(t, ch)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	assert.Equal(t, 0, NewBus().Publish(FollowStatusChanged{ViewerEmail: "nobody@x.com"}))
}

func TestConsumerHandle(t *testing.T) {
	bus := NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, _ := bus.Subscribe(ctx, "me@x.com")
	c := &Consumer{bus: bus, logger: logger.Nop()}

	c.Handle([]byte(`not json`))
	c.Handle([]byte(`{"viewerEmail":"me@x.com"}`))
	assert.Empty(t, ch)

	c.Handle([]byte(`{"viewerEmail":"me@x.com","curatorEmail":"dj@x.com","isFollowing":true}`))
	require.Len(t, ch, 1)
	assert.Equal(t, FollowStatusChanged{ViewerEmail: "me@x.com", CuratorEmail: "dj@x.com", IsFollowing: true}, <-ch)
}
