package feed

import (
	"math/rand/v2"
	"testing"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeline() *Pipeline {
	return New(DefaultConfig(), WithRand(rand.New(rand.NewPCG(3, 5))))
}

func follower(emails ...string) *domain.Viewer {
	return &domain.Viewer{Email: "me@x.com", FollowedCurators: emails}
}

func TestFollowingTab(t *testing.T) {
	p := newPipeline()
	items := []domain.FeedItem{
		item("A", "a", withEmail("a@x.com")),
		item("B", "b", withEmail("b@x.com"), withCategory("food"), withTags("techno")),
	}

	got := p.FilterAndSort(items, domain.TabFollowing, follower("a@x.com"), domain.DefaultFilterState(), now)
	assert.Equal(t, []string{"A-a"}, ids(got))

	assert.Empty(t, p.FilterAndSort(items, domain.TabFollowing, nil, domain.DefaultFilterState(), now))
	assert.Empty(t, p.FilterAndSort(items, domain.TabFollowing, follower(), domain.DefaultFilterState(), now))
}

func TestFollowingTabSortsByRecency(t *testing.T) {
	p := newPipeline()
	items := []domain.FeedItem{
		item("old", "a", withDate(dayAt(5, 10))),
		item("stamped", "a", withDate(dayAt(1, 10)), withTimestamp(dayAt(9, 0))),
		item("mid", "a", withDate(dayAt(7, 10))),
	}

	got := p.FilterAndSort(items, domain.TabFollowing, follower("a@x.com"), domain.DefaultFilterState(), now)

	assert.Equal(t, []string{"stamped-a", "mid-a", "old-a"}, ids(got))
}

func TestPastDateExclusion(t *testing.T) {
	p := newPipeline()
	yesterday := item("Y", "a", withDate(dayAt(-1, 20)))
	items := []domain.FeedItem{yesterday}

	assert.Empty(t, p.FilterAndSort(items, domain.TabForYou, follower("a@x.com"), domain.DefaultFilterState(), now))

	got := p.FilterAndSort(items, domain.TabFollowing, follower("a@x.com"), domain.DefaultFilterState(), now)
	assert.Equal(t, []string{"Y-a"}, ids(got))

	assert.Empty(t, p.FilterAndSort(items, domain.TabFollowing, follower("other@x.com"), domain.DefaultFilterState(), now))

	promo := item("P", "a", withDate(dayAt(-1, 20)), promotional())
	assert.Empty(t, p.FilterAndSort([]domain.FeedItem{promo}, domain.TabFollowing, follower("a@x.com"), domain.DefaultFilterState(), now))
}

func TestEarlierTodayIsNotPast(t *testing.T) {
	p := newPipeline()
	items := []domain.FeedItem{item("T", "a", withDate(dayAt(0, 1)))}

	got := p.FilterAndSort(items, domain.TabForYou, nil, domain.DefaultFilterState(), now)

	assert.Equal(t, []string{"T-a"}, ids(got))
}

func TestBlockedOrganizer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BlockedOrganizers = []string{"SPAM@x.com", "Bad Actor"}
	p := New(cfg)
	items := []domain.FeedItem{
		item("A", "spam"),
		item("B", "Bad Actor"),
		item("C", "fine"),
	}

	got := p.FilterAndSort(items, domain.TabForYou, nil, domain.DefaultFilterState(), now)

	assert.Equal(t, []string{"C-fine"}, ids(got))
}

func TestSemiPublicOnlyForOrganizer(t *testing.T) {
	p := newPipeline()
	items := []domain.FeedItem{item("S", "me", withEmail("me@x.com"), withPrivacy(domain.PrivacySemiPublic))}

	assert.Len(t, p.FilterAndSort(items, domain.TabForYou, &domain.Viewer{Email: "me@x.com"}, domain.DefaultFilterState(), now), 1)
	assert.Empty(t, p.FilterAndSort(items, domain.TabForYou, &domain.Viewer{Email: "you@x.com"}, domain.DefaultFilterState(), now))
}

func TestForYouAppliesFilters(t *testing.T) {
	p := newPipeline()
	items := []domain.FeedItem{
		item("match", "a", withCategory("Techno"), withPlace("Brooklyn", ""), withDate(dayAt(1, 23))),
		item("wrong-genre", "a", withCategory("jazz"), withPlace("Brooklyn", ""), withDate(dayAt(1, 23))),
		item("wrong-place", "a", withCategory("techno"), withPlace("Queens", "Elsewhere"), withDate(dayAt(1, 23))),
		item("wrong-time", "a", withCategory("techno"), withPlace("Brooklyn", ""), withDate(dayAt(1, 10))),
		item("wrong-day", "a", withCategory("techno"), withPlace("Brooklyn", ""), withDate(dayAt(2, 23))),
	}
	state := domain.FilterState{
		SelectedGenres: []string{"techno"},
		LocationFilter: "brook",
		DateFilter:     domain.DateFilter{Bucket: domain.DateTomorrow},
		SelectedTime:   domain.TimeNight,
		ActiveTab:      domain.TabForYou,
	}

	got := p.FilterAndSort(items, domain.TabForYou, nil, state, now)

	assert.Equal(t, []string{"match-a"}, ids(got))
}

func TestForYouInterleavesPromotional(t *testing.T) {
	p := newPipeline()
	var items []domain.FeedItem
	for i := 0; i < 12; i++ {
		items = append(items, item(string(rune('a'+i)), "org"))
	}
	items = append(items,
		item("S1", "sponsor", withSource(domain.SourceSponsored), promotional()),
		item("S2", "sponsor", withSource(domain.SourceSponsored), promotional()),
		item("S3", "sponsor", withSource(domain.SourceSponsored), promotional()),
	)

	got := p.FilterAndSort(items, domain.TabForYou, nil, domain.DefaultFilterState(), now)

	require.Len(t, got, 15)
	assert.Equal(t, "S1", got[6].Title)
	assert.Equal(t, "S2", got[13].Title)
	assert.Equal(t, "S3", got[14].Title)
}

func TestFinalPass(t *testing.T) {
	p := newPipeline()
	items := []domain.FeedItem{
		item("vibe-active", "a", withSource(domain.SourceVibePost), withDate(nil)),
		item("vibe-published", "a", withSource(domain.SourceMemoryPost), withDate(nil), withStatus(domain.StatusPublished)),
		item("vibe-other", "a", withSource(domain.SourceVibePostSeed), withDate(nil), withStatus("archived")),
		item("vibe-old", "a", withSource(domain.SourceVibePost), withDate(dayAt(-3, 10))),
		item("undated-event", "a", withDate(nil)),
		item("cancelled", "a", withStatus(domain.StatusCancelled)),
	}

	got := p.FilterAndSort(items, domain.TabForYou, nil, domain.DefaultFilterState(), now)

	assert.ElementsMatch(t, []string{"vibe-active-a", "vibe-published-a", "vibe-old-a"}, ids(got))
}

func TestFoodTab(t *testing.T) {
	p := newPipeline()
	items := []domain.FeedItem{
		item("pasta", "a", withCategory("food"), withTimestamp(dayAt(-1, 0))),
		item("yoga brunch", "a", withCategory("wellness"), withDescription("best brunch")),
		item("bake sale", "a", withDescription("amazing bakery treats"), withTimestamp(dayAt(0, 0))),
		item("rave", "a", withCategory("music")),
	}

	got := p.FilterAndSort(items, domain.TabFood, nil, domain.DefaultFilterState(), now)

	assert.Equal(t, []string{"bake sale-a", "pasta-a"}, ids(got))
}

func TestEndToEndScenario(t *testing.T) {
	items := []domain.FeedItem{
		item("A", "o1", withID("A-organic"), withCategory("music"), withDate(dayAt(1, 20))),
		item("A", "o1", withID("A-vibe"), withSource(domain.SourceVibePost), withDate(nil)),
		item("B", "o2", withID("B-sponsored"), withSource(domain.SourceSponsored), promotional()),
	}

	// Both shuffle orders of the two organic items must end the same way.
	for seed := uint64(0); seed < 8; seed++ {
		p := New(DefaultConfig(), WithRand(rand.New(rand.NewPCG(seed, seed+1))))

		got := p.FilterAndSort(items, domain.TabForYou, nil, domain.DefaultFilterState(), now)

		assert.Equal(t, []string{"A-organic", "B-sponsored"}, ids(got), "seed %d", seed)
	}
}
