package sessionimpl

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/internal/scroll"
	"github.com/orgball2608/scenefeed/pkg/debounce"
)

// Session is the state of one viewer. All fields are guarded by mu.
type Session struct {
	email    string
	tracker  *scroll.Tracker
	location *debounce.Debouncer

	mu           sync.Mutex
	viewer       *domain.Viewer
	viewerLoaded bool
	state        domain.FilterState
	results      map[domain.Tab][]domain.FeedItem
	served       int
	locationGen  uint64
	followCancel context.CancelFunc
	subCancel    context.CancelFunc
}

func newSession(email string, clock clockwork.Clock, debounceDelay time.Duration) *Session {
	return &Session{
		email:    email,
		tracker:  scroll.NewTracker(),
		location: debounce.New(clock, debounceDelay),
		state:    domain.DefaultFilterState(),
		results:  make(map[domain.Tab][]domain.FeedItem),
	}
}

func (s *Session) snapshot() (*domain.Viewer, domain.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneViewer(s.viewer), cloneState(s.state)
}

func (s *Session) setViewer(v *domain.Viewer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewer = v
	s.viewerLoaded = true
}

// bumpLocation invalidates debounced location text still in flight. Callers
// hold s.mu.
func (s *Session) bumpLocation() uint64 {
	s.locationGen++
	return s.locationGen
}

// setDebouncedLocation applies text unless another location arrived after gen.
func (s *Session) setDebouncedLocation(gen uint64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.locationGen {
		return
	}
	s.state.LocationFilter = text
}

func (s *Session) close() {
	s.location.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.followCancel != nil {
		s.followCancel()
		s.followCancel = nil
	}
	if s.subCancel != nil {
		s.subCancel()
		s.subCancel = nil
	}
}

func cloneViewer(v *domain.Viewer) *domain.Viewer {
	if v == nil {
		return nil
	}
	c := *v
	c.FollowedCurators = slices.Clone(v.FollowedCurators)
	c.SavedItemIDs = slices.Clone(v.SavedItemIDs)
	return &c
}

func cloneState(st domain.FilterState) domain.FilterState {
	st.SelectedGenres = slices.Clone(st.SelectedGenres)
	return st
}
