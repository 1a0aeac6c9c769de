package sessionimpl

import (
	"context"
	"time"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/internal/geo"
	"github.com/orgball2608/scenefeed/internal/metrics"
	"github.com/orgball2608/scenefeed/internal/scroll"
	"github.com/orgball2608/scenefeed/internal/session"
	"github.com/orgball2608/scenefeed/pkg/errors"
)

func (m *Manager) Feed(ctx context.Context, v session.Visitor, req session.FeedRequest) (*session.Page, error) {
	if req.Tab != "" && (!req.Tab.Valid() || req.Tab == domain.TabMap) {
		return nil, errors.Wrap(errors.ErrInvalidInput, "unknown feed tab "+string(req.Tab))
	}
	if req.Time != nil && !req.Time.Valid() {
		return nil, errors.Wrap(errors.ErrInvalidInput, "unknown time of day "+string(*req.Time))
	}

	s := m.session(v)
	tab := s.apply(req)

	if req.Offset > 0 {
		if page, ok := s.page(tab, req.Offset, m.Config.Feed.PageSize); ok {
			return page, nil
		}
	}

	err := m.reload(ctx, s, tab)
	m.Metrics.FeedLoads.WithLabelValues(string(tab), metrics.Result(err)).Inc()
	if err != nil {
		m.Logger.Error("Feed load failed", "tab", tab, "viewer", v.Email, "error", err)
		return nil, err
	}

	page, _ := s.page(tab, req.Offset, m.Config.Feed.PageSize)
	return page, nil
}

// reload fetches the tab's items and recomputes the rendered sequence.
func (m *Manager) reload(ctx context.Context, s *Session, tab domain.Tab) error {
	if err := m.ensureViewer(ctx, s); err != nil {
		return err
	}

	v, state := s.snapshot()
	items, err := m.loadItems(ctx, tab, v)
	if err != nil {
		return err
	}

	result := m.Pipeline.FilterAndSort(items, tab, v, state, m.now())

	s.mu.Lock()
	s.results[tab] = result
	s.served = 0
	s.mu.Unlock()

	m.Logger.Debug("Feed reloaded", "tab", tab, "viewer", s.email, "raw", len(items), "rendered", len(result))
	return nil
}

func (m *Manager) Map(ctx context.Context, visitor session.Visitor, q geo.Query) ([]geo.Marker, error) {
	s := m.session(visitor)
	if err := m.ensureViewer(ctx, s); err != nil {
		return nil, err
	}

	v, _ := s.snapshot()
	items, err := m.loadItems(ctx, domain.TabMap, v)
	m.Metrics.FeedLoads.WithLabelValues(string(domain.TabMap), metrics.Result(err)).Inc()
	if err != nil {
		return nil, err
	}

	markers := geo.Group(m.MapFilter.Apply(items, q, v, m.now()))
	return markers, nil
}

func (m *Manager) SetLocation(v session.Visitor, text string) {
	s := m.session(v)

	s.mu.Lock()
	gen := s.bumpLocation()
	s.mu.Unlock()

	s.location.Do(func() {
		s.setDebouncedLocation(gen, text)
	})
}

func (m *Manager) Filters(v session.Visitor) domain.FilterState {
	_, state := m.session(v).snapshot()
	return state
}

func (m *Manager) Scroll(v session.Visitor, layout scroll.Layout) session.ScrollResult {
	s := m.session(v)
	state, changed := s.tracker.Update(layout)

	s.mu.Lock()
	served := s.served
	s.mu.Unlock()

	return session.ScrollResult{
		Index:         state.Index,
		Distance:      state.Distance,
		Emphasis:      scroll.Emphasis(state.Distance),
		Changed:       changed,
		NeedsNextPage: scroll.NeedsNextPage(s.tracker.Current(), served, nextPageThreshold),
	}
}

// now is the clock time in APP_TIMEZONE, so calendar days match the seeded data.
func (m *Manager) now() time.Time {
	return m.Clock.Now().In(m.Config.Location())
}

// apply merges the request into the filter state and returns the tab to load.
func (s *Session) apply(req session.FeedRequest) domain.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Tab != "" {
		s.state.ActiveTab = req.Tab
	}
	if req.Genres != nil {
		s.state.SelectedGenres = append([]string(nil), req.Genres...)
	}
	if req.Location != nil {
		s.location.Stop()
		s.bumpLocation()
		s.state.LocationFilter = *req.Location
	}
	if req.Date != nil {
		s.state.DateFilter = *req.Date
	}
	if req.Time != nil {
		s.state.SelectedTime = *req.Time
	}
	return s.state.ActiveTab
}

// page slices the last result of tab. ok is false when the tab was never loaded.
func (s *Session) page(tab domain.Tab, offset, size int) (*session.Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, ok := s.results[tab]
	if !ok {
		return nil, false
	}

	if size <= 0 {
		size = len(result)
	}
	start := min(max(offset, 0), len(result))
	end := min(start+size, len(result))
	s.served = max(s.served, end)

	return &session.Page{
		Tab:     tab,
		Items:   append([]domain.FeedItem{}, result[start:end]...),
		Offset:  start,
		Total:   len(result),
		HasMore: end < len(result),
	}, true
}
