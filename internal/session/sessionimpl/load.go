package sessionimpl

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/orgball2608/scenefeed/internal/cache"
	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/internal/repositories/item"
	"github.com/orgball2608/scenefeed/internal/repositories/viewer"
	"github.com/orgball2608/scenefeed/pkg/errors"
)

// ensureViewer loads the viewer once per session. Unknown viewers browse
// anonymously.
func (m *Manager) ensureViewer(ctx context.Context, s *Session) error {
	s.mu.Lock()
	loaded := s.viewerLoaded
	s.mu.Unlock()
	if loaded || s.email == "" {
		return nil
	}

	v, err := m.fetchViewer(ctx, s.email)
	if err != nil {
		return err
	}
	s.setViewer(v)
	return nil
}

func (m *Manager) fetchViewer(ctx context.Context, email string) (*domain.Viewer, error) {
	v, err := m.ViewerRepo.Me(ctx, email)
	if err != nil {
		if errors.Is(err, viewer.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.LoadFailure(err, "failed to load viewer")
	}
	return v, nil
}

// loadItems returns the raw store result for a tab, going through the cache.
func (m *Manager) loadItems(ctx context.Context, tab domain.Tab, v *domain.Viewer) ([]domain.FeedItem, error) {
	opts := item.ListOptions{
		ExcludeStatuses: []domain.Status{domain.StatusCancelled, domain.StatusDraft},
		SortBy:          item.SortRecentDesc,
		Limit:           m.Config.Feed.FetchLimit,
	}

	key := "items:all"
	if tab == domain.TabFollowing {
		if v == nil || len(v.FollowedCurators) == 0 {
			return nil, nil
		}
		follows := append([]string(nil), v.FollowedCurators...)
		sort.Strings(follows)
		opts.OrganizerEmails = follows
		key = "items:following:" + strings.Join(follows, ",")
	}

	if items, ok := m.cached(ctx, key); ok {
		return items, nil
	}

	items, err := m.ItemRepo.List(ctx, opts)
	if err != nil {
		return nil, errors.LoadFailure(err, "failed to load "+string(tab)+" items")
	}

	m.store(ctx, key, items)
	return items, nil
}

func (m *Manager) cached(ctx context.Context, key string) ([]domain.FeedItem, bool) {
	raw, err := m.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			m.Logger.Warn("Cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var items []domain.FeedItem
	if err := json.Unmarshal(raw, &items); err != nil {
		m.Logger.Warn("Dropping undecodable cache entry", "key", key, "error", err)
		return nil, false
	}
	return items, true
}

func (m *Manager) store(ctx context.Context, key string, items []domain.FeedItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		m.Logger.Warn("Failed to encode cache entry", "key", key, "error", err)
		return
	}
	if err := m.Cache.Set(ctx, key, raw); err != nil {
		m.Logger.Warn("Cache write failed", "key", key, "error", err)
	}
}
