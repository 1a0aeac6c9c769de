package feed

import (
	"testing"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDedupeDropsHiddenStatuses(t *testing.T) {
	items := []domain.FeedItem{
		item("A", "o1", withStatus(domain.StatusCancelled)),
		item("B", "o1", withStatus(domain.StatusDraft)),
		item("C", "o1"),
	}

	assert.Equal(t, []string{"C-o1"}, ids(Dedupe(items)))
}

func TestDedupeFirstSeenWins(t *testing.T) {
	items := []domain.FeedItem{
		item("A", "o1", withID("first")),
		item("B", "o2", withID("other")),
		item("A", "o1", withID("second")),
	}

	assert.Equal(t, []string{"first", "other"}, ids(Dedupe(items)))
}

func TestDedupeRealEventSupersedesVibePost(t *testing.T) {
	items := []domain.FeedItem{
		item("A", "o1", withID("vibe"), withSource(domain.SourceVibePost), withDate(nil)),
		item("B", "o2", withID("other")),
		item("A", "o1", withID("event")),
	}

	got := Dedupe(items)

	assert.Equal(t, []string{"event", "other"}, ids(got))
	assert.Equal(t, domain.SourceOrganicEvent, got[0].Source)
}

func TestDedupeVibePostDoesNotReplaceEvent(t *testing.T) {
	items := []domain.FeedItem{
		item("A", "o1", withID("event")),
		item("A", "o1", withID("vibe"), withSource(domain.SourceVibePost)),
	}

	assert.Equal(t, []string{"event"}, ids(Dedupe(items)))
}

func TestDedupeTwoVibePostsKeepsFirst(t *testing.T) {
	items := []domain.FeedItem{
		item("A", "o1", withID("v1"), withSource(domain.SourceVibePost)),
		item("A", "o1", withID("v2"), withSource(domain.SourceVibePost)),
	}

	assert.Equal(t, []string{"v1"}, ids(Dedupe(items)))
}

func TestDedupeNoSharedKeys(t *testing.T) {
	var items []domain.FeedItem
	for i := 0; i < 30; i++ {
		title := string(rune('A' + i%5))
		organizer := string(rune('a' + i%3))
		src := domain.SourceOrganicEvent
		if i%4 == 0 {
			src = domain.SourceVibePost
		}
		items = append(items, item(title, organizer, withSource(src)))
	}

	got := Dedupe(items)

	type triple struct {
		title, organizer string
		source           domain.Source
	}
	seen := map[triple]bool{}
	for _, it := range got {
		k := triple{it.Title, it.OrganizerName, it.Source}
		assert.False(t, seen[k], "duplicate key %v", k)
		seen[k] = true
	}
	assert.Len(t, got, 15)
}

func TestDedupeEmpty(t *testing.T) {
	got := Dedupe(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
