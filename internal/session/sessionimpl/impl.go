package sessionimpl

import (
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/scenefeed/internal/cache"
	"github.com/orgball2608/scenefeed/internal/events"
	"github.com/orgball2608/scenefeed/internal/feed"
	"github.com/orgball2608/scenefeed/internal/geo"
	"github.com/orgball2608/scenefeed/internal/metrics"
	"github.com/orgball2608/scenefeed/internal/repositories/item"
	"github.com/orgball2608/scenefeed/internal/repositories/viewer"
	"github.com/orgball2608/scenefeed/internal/session"
	"github.com/orgball2608/scenefeed/pkg/config"
	"github.com/orgball2608/scenefeed/pkg/logger"
	"go.uber.org/fx"
)

// nextPageThreshold is how many cards before the end of the loaded items the
// next page is requested.
const nextPageThreshold = 3

type Opts struct {
	fx.In

	ItemRepo   item.Repository
	ViewerRepo viewer.Repository
	Cache      cache.Cache
	Pipeline   *feed.Pipeline
	Bus        *events.Bus
	Clock      clockwork.Clock
	Metrics    *metrics.Metrics
	Logger     logger.Logger
	Config     *config.Config
}

// Manager owns one Session per visitor key. Sessions idle for longer than
// FEED_SESSION_IDLE_TTL, or pushed out by FEED_MAX_SESSIONS, are closed.
type Manager struct {
	ItemRepo   item.Repository
	ViewerRepo viewer.Repository
	Cache      cache.Cache
	Pipeline   *feed.Pipeline
	MapFilter  *geo.Filter
	Bus        *events.Bus
	Clock      clockwork.Clock
	Metrics    *metrics.Metrics
	Logger     logger.Logger
	Config     *config.Config

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
}

var _ session.Client = (*Manager)(nil)

func New(opts Opts) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		ItemRepo:   opts.ItemRepo,
		ViewerRepo: opts.ViewerRepo,
		Cache:      opts.Cache,
		Pipeline:   opts.Pipeline,
		MapFilter:  geo.NewFilter(opts.Pipeline.Config()),
		Bus:        opts.Bus,
		Clock:      opts.Clock,
		Metrics:    opts.Metrics,
		Logger:     opts.Logger.WithComponent("Session"),
		Config:     opts.Config,
		ctx:        ctx,
		cancel:     cancel,
	}
	m.sessions = expirable.NewLRU[string, *Session](opts.Config.Feed.MaxSessions, m.evicted, opts.Config.Feed.SessionIdleTTL)
	return m
}

// session returns the visitor's session, creating it on first use. Every call
// restarts the idle timer. A visitor without a key gets a throwaway session.
func (m *Manager) session(v session.Visitor) *Session {
	key := v.Key()
	if key == "" {
		return newSession(v.Email, m.Clock, m.Config.Feed.LocationDebounce)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions.Get(key)
	if !ok {
		// an expired entry not yet swept would be overwritten without closing
		m.sessions.Remove(key)
		s = newSession(v.Email, m.Clock, m.Config.Feed.LocationDebounce)
		if !v.Anonymous() {
			m.subscribe(s)
		}
	}
	m.sessions.Add(key, s)
	return s
}

func (m *Manager) evicted(key string, s *Session) {
	s.close()
	m.Logger.Debug("Session closed", "session", key)
}

// Close drops a visitor session and its follow subscription.
func (m *Manager) Close(v session.Visitor) {
	m.sessions.Remove(v.Key())
}

// Stop closes every session.
func (m *Manager) Stop() {
	m.cancel()
	m.sessions.Purge()
}

func (m *Manager) SessionCount() int {
	return m.sessions.Len()
}
