package seederimpl

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/scenefeed/internal/seeder"
)

// TimestampGuard is a process-local timestamp store. It is a rate limiter, not
// a retry mechanism.
type TimestampGuard struct {
	clock     clockwork.Clock
	threshold time.Duration

	mu        sync.Mutex
	completed map[string]time.Time
}

var _ seeder.Guard = (*TimestampGuard)(nil)

func NewGuard(clock clockwork.Clock, skipHours int) *TimestampGuard {
	return &TimestampGuard{
		clock:     clock,
		threshold: time.Duration(skipHours) * time.Hour,
		completed: make(map[string]time.Time),
	}
}

func (g *TimestampGuard) ShouldSkip(operation string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	last, ok := g.completed[operation]
	if !ok {
		return false
	}
	return g.clock.Since(last) < g.threshold
}

func (g *TimestampGuard) MarkComplete(operation string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.completed[operation] = g.clock.Now()
}
