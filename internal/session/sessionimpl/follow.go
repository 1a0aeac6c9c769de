package sessionimpl

import (
	"context"
	"slices"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/internal/events"
	"github.com/orgball2608/scenefeed/internal/repositories/viewer"
	"github.com/orgball2608/scenefeed/pkg/errors"
)

func (m *Manager) Follow(ctx context.Context, viewerEmail, curatorEmail string, following bool) error {
	if viewerEmail == "" {
		return errors.ErrUnauthorized
	}
	if curatorEmail == "" || curatorEmail == viewerEmail {
		return errors.Wrap(errors.ErrInvalidInput, "invalid curator")
	}

	current, err := m.ViewerRepo.Me(ctx, viewerEmail)
	if err != nil {
		if errors.Is(err, viewer.ErrNotFound) {
			return errors.ErrUnauthorized
		}
		return errors.LoadFailure(err, "failed to load viewer")
	}

	follows := withMember(current.FollowedCurators, curatorEmail, following)
	if _, err := m.ViewerRepo.UpdateMe(ctx, viewerEmail, viewer.Update{FollowedCurators: &follows}); err != nil {
		return errors.SaveFailure(err, "failed to update follows")
	}

	m.Bus.Publish(events.FollowStatusChanged{
		ViewerEmail:  viewerEmail,
		CuratorEmail: curatorEmail,
		IsFollowing:  following,
	})
	return nil
}

func (m *Manager) subscribe(s *Session) {
	ctx, cancel := context.WithCancel(m.ctx)
	s.subCancel = cancel

	ch, id := m.Bus.Subscribe(ctx, s.email)
	m.Logger.Debug("Follow subscription opened", "viewer", s.email, "subscription", id)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case evt := <-ch:
				m.handleFollow(s, evt)
			}
		}
	}()
}

// handleFollow applies the change optimistically and restarts the reload
// sequence. A sequence still in flight is cancelled; the last event wins.
func (m *Manager) handleFollow(s *Session, evt events.FollowStatusChanged) {
	m.Metrics.FollowEvents.Inc()

	ctx, cancel := context.WithCancel(m.ctx)

	s.mu.Lock()
	if s.followCancel != nil {
		s.followCancel()
	}
	s.followCancel = cancel
	if s.viewer != nil {
		s.viewer.FollowedCurators = withMember(s.viewer.FollowedCurators, evt.CuratorEmail, evt.IsFollowing)
	}
	tab := s.state.ActiveTab
	s.mu.Unlock()

	go m.followSequence(ctx, s, tab)
}

func (m *Manager) followSequence(ctx context.Context, s *Session, tab domain.Tab) {
	if err := m.Cache.Clear(ctx); err != nil {
		m.Logger.Warn("Cache clear failed", "error", err)
	}

	select {
	case <-ctx.Done():
		return
	case <-m.Clock.After(m.Config.Feed.FollowReloadDelay):
	}
	if ctx.Err() != nil {
		return
	}

	v, err := m.fetchViewer(ctx, s.email)
	if err != nil {
		if ctx.Err() == nil {
			m.Logger.Error("Viewer refetch after follow failed", "viewer", s.email, "error", err)
		}
		return
	}
	if ctx.Err() != nil {
		return
	}
	s.setViewer(v)

	if tab == domain.TabMap {
		return
	}
	if err := m.reload(ctx, s, tab); err != nil && ctx.Err() == nil {
		m.Logger.Error("Reload after follow failed", "viewer", s.email, "tab", tab, "error", err)
	}
}

func withMember(list []string, member string, present bool) []string {
	out := slices.DeleteFunc(slices.Clone(list), func(e string) bool { return e == member })
	if present {
		out = append(out, member)
	}
	return out
}
