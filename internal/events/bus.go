// Package events carries follow-status changes from the follow action to the
// viewer sessions that must reload.
package events

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// FollowStatusChanged is broadcast when a viewer follows or unfollows a curator.
type FollowStatusChanged struct {
	ViewerEmail  string `json:"viewerEmail"`
	CuratorEmail string `json:"curatorEmail"`
	IsFollowing  bool   `json:"isFollowing"`
}

// Bus fans follow events out to the subscriptions of the affected viewer. Each
// subscription holds at most one pending event; a newer event replaces an unread
// older one, so the last update wins.
type Bus struct {
	// subscriptions maps viewer email to subscription id to channel.
	subscriptions map[string]map[string]chan FollowStatusChanged
	mu            sync.RWMutex
}

func NewBus() *Bus {
	return &Bus{
		subscriptions: make(map[string]map[string]chan FollowStatusChanged),
	}
}

// Subscribe registers a subscription that lives until ctx is done.
func (b *Bus) Subscribe(ctx context.Context, viewerEmail string) (<-chan FollowStatusChanged, string) {
	id := "follow_sub_" + uuid.New().String()
	ch := make(chan FollowStatusChanged, 1)

	b.mu.Lock()
	if _, ok := b.subscriptions[viewerEmail]; !ok {
		b.subscriptions[viewerEmail] = make(map[string]chan FollowStatusChanged)
	}
	b.subscriptions[viewerEmail][id] = ch
	b.mu.Unlock()

	go b.cleanUp(ctx, viewerEmail, id)

	return ch, id
}

func (b *Bus) cleanUp(ctx context.Context, viewerEmail, id string) {
	<-ctx.Done()

	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscriptions[viewerEmail], id)
	if len(b.subscriptions[viewerEmail]) == 0 {
		delete(b.subscriptions, viewerEmail)
	}
}

// Publish never blocks. It returns the number of subscriptions notified.
func (b *Bus) Publish(evt FollowStatusChanged) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subs := b.subscriptions[evt.ViewerEmail]
	for _, ch := range subs {
		offer(ch, evt)
	}
	return len(subs)
}

func (b *Bus) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, subs := range b.subscriptions {
		count += len(subs)
	}
	return count
}

func offer(ch chan FollowStatusChanged, evt FollowStatusChanged) {
	select {
	case ch <- evt:
		return
	default:
	}

	// drop the stale pending event
	select {
	case <-ch:
	default:
	}

	select {
	case ch <- evt:
	default:
	}
}
