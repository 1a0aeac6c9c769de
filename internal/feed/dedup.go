package feed

import "github.com/orgball2608/scenefeed/internal/domain"

// dedupKey identifies one piece of content across seed passes. Source is left out
// so that a vibe-post placeholder and the real event it announces collide.
type dedupKey struct {
	title     string
	organizer string
}

// Dedupe keeps one item per (title, organizer name), dropping cancelled and draft
// items first. The first item seen wins, except that a vibe-post is replaced in
// place by a later item with the same key that is not a vibe-post.
func Dedupe(items []domain.FeedItem) []domain.FeedItem {
	out := make([]domain.FeedItem, 0, len(items))
	seen := make(map[dedupKey]int, len(items))

	for _, item := range items {
		if item.Status.Hidden() {
			continue
		}

		key := dedupKey{title: item.Title, organizer: item.OrganizerName}
		idx, ok := seen[key]
		if !ok {
			seen[key] = len(out)
			out = append(out, item)
			continue
		}

		if out[idx].Source == domain.SourceVibePost && item.Source != domain.SourceVibePost {
			out[idx] = item
		}
	}

	return out
}
