package sessionimpl

import (
	"context"
	"slices"

	"github.com/orgball2608/scenefeed/internal/metrics"
	"github.com/orgball2608/scenefeed/internal/repositories/viewer"
	"github.com/orgball2608/scenefeed/internal/session"
	"github.com/orgball2608/scenefeed/pkg/errors"
)

// ToggleSave updates the local saved set first and rolls it back when the store
// rejects the change.
func (m *Manager) ToggleSave(ctx context.Context, viewerEmail, itemID string) (bool, error) {
	if viewerEmail == "" {
		return false, errors.ErrUnauthorized
	}
	if itemID == "" {
		return false, errors.Wrap(errors.ErrInvalidInput, "missing item id")
	}

	s := m.session(session.Visitor{Email: viewerEmail})
	if err := m.ensureViewer(ctx, s); err != nil {
		return false, err
	}

	s.mu.Lock()
	if s.viewer == nil {
		s.mu.Unlock()
		return false, errors.ErrUnauthorized
	}
	previous := slices.Clone(s.viewer.SavedItemIDs)
	saved := !slices.Contains(previous, itemID)
	next := withMember(previous, itemID, saved)
	s.viewer.SavedItemIDs = next
	s.mu.Unlock()

	_, err := m.ViewerRepo.UpdateMe(ctx, viewerEmail, viewer.Update{SavedItemIDs: &next})
	m.Metrics.SaveToggles.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		s.mu.Lock()
		if s.viewer != nil {
			s.viewer.SavedItemIDs = previous
		}
		s.mu.Unlock()

		m.Logger.Error("Failed to update saved items", "viewer", viewerEmail, "item", itemID, "error", err)
		return !saved, errors.SaveFailure(err, "failed to update saved items")
	}

	return saved, nil
}
