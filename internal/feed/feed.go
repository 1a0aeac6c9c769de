// Package feed ranks, filters and composes the card feed for a tab.
//
// Every function here is pure apart from the shuffle's random source; the caller
// supplies "now" so that day boundaries are computed in the viewer's location.
package feed

import (
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/samber/lo"
)

type Pipeline struct {
	cfg Config

	// rngMu serializes an injected rng; the global source needs no lock.
	rngMu sync.Mutex
	rng   *rand.Rand
}

type Option func(*Pipeline)

// WithRand fixes the random source used by the forYou shuffle.
func WithRand(rng *rand.Rand) Option {
	return func(p *Pipeline) {
		p.rng = rng
	}
}

func New(cfg Config, opts ...Option) *Pipeline {
	p := &Pipeline{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) Config() Config {
	return p.cfg
}

// FilterAndSort turns the raw item list into the rendered sequence for tab.
func (p *Pipeline) FilterAndSort(items []domain.FeedItem, tab domain.Tab, viewer *domain.Viewer, state domain.FilterState, now time.Time) []domain.FeedItem {
	visible := lo.Filter(items, func(item domain.FeedItem, _ int) bool {
		return !p.cfg.isBlocked(item) &&
			Visible(item, viewer) &&
			p.keepPastDated(item, tab, viewer, now)
	})

	var ordered []domain.FeedItem
	switch tab {
	case domain.TabFollowing:
		ordered = p.following(visible, viewer)
	case domain.TabFood:
		ordered = p.food(visible)
	default:
		ordered = p.forYou(visible, state, now)
	}

	return Dedupe(p.finalPass(ordered, tab, viewer, now))
}

func (p *Pipeline) following(items []domain.FeedItem, viewer *domain.Viewer) []domain.FeedItem {
	if viewer == nil || len(viewer.FollowedCurators) == 0 {
		return []domain.FeedItem{}
	}

	followed := lo.Filter(items, func(item domain.FeedItem, _ int) bool {
		return viewer.Follows(item.OrganizerEmail)
	})
	sortByRecency(followed)
	return followed
}

func (p *Pipeline) food(items []domain.FeedItem) []domain.FeedItem {
	food := lo.Filter(items, func(item domain.FeedItem, _ int) bool {
		return p.cfg.IsFood(item)
	})
	sortByRecency(food)
	return food
}

func (p *Pipeline) forYou(items []domain.FeedItem, state domain.FilterState, now time.Time) []domain.FeedItem {
	genres := genreSet(state.SelectedGenres)

	matched := lo.Filter(items, func(item domain.FeedItem, _ int) bool {
		return MatchesDate(item, state.DateFilter, now) &&
			MatchesTimeOfDay(item, state.SelectedTime, now.Location()) &&
			MatchesGenres(item, genres) &&
			MatchesLocation(item, state.LocationFilter)
	})

	var ephemeral, promotional, regular []domain.FeedItem
	for _, item := range matched {
		switch {
		case p.cfg.IsEphemeral(item.Source):
			ephemeral = append(ephemeral, item)
		case item.IsPromotional:
			promotional = append(promotional, item)
		default:
			regular = append(regular, item)
		}
	}

	organic := p.shuffle(append(ephemeral, regular...))
	return Compose(organic, promotional, p.cfg.Cadence)
}

func (p *Pipeline) shuffle(items []domain.FeedItem) []domain.FeedItem {
	if p.rng == nil {
		return Shuffle(items, nil)
	}
	p.rngMu.Lock()
	defer p.rngMu.Unlock()
	return Shuffle(items, p.rng)
}

// finalPass keeps ephemeral items only when active or published, and other items
// only when dated today or later. Past items the following tab kept for a
// followed organizer survive.
func (p *Pipeline) finalPass(items []domain.FeedItem, tab domain.Tab, viewer *domain.Viewer, now time.Time) []domain.FeedItem {
	return lo.Filter(items, func(item domain.FeedItem, _ int) bool {
		if p.cfg.IsEphemeral(item.Source) {
			return item.Status == domain.StatusActive || item.Status == domain.StatusPublished
		}
		if item.Date == nil {
			return false
		}
		if !IsPast(*item.Date, now) {
			return true
		}
		return tab == domain.TabFollowing && viewer.Follows(item.OrganizerEmail) && !item.IsPromotional
	})
}

func sortByRecency(items []domain.FeedItem) {
	slices.SortStableFunc(items, func(a, b domain.FeedItem) int {
		return b.RecencyKey().Compare(a.RecencyKey())
	})
}
