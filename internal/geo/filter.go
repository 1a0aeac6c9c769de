// Package geo filters items for the map view and groups them into markers.
package geo

import (
	"time"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/internal/feed"
	"github.com/samber/lo"
)

type ContentType string

const (
	ContentEvents  ContentType = "events"
	ContentMoments ContentType = "moments"
)

type DateBucket string

const (
	DateAny         DateBucket = ""
	DateToday       DateBucket = "Today"
	DateTomorrow    DateBucket = "Tomorrow"
	DateThisWeek    DateBucket = "This Week"
	DateThisWeekend DateBucket = "This Weekend"
	DateNextWeek    DateBucket = "Next Week"
	DateThisMonth   DateBucket = "This Month"
)

type Query struct {
	Content    ContentType
	Categories []string
	Location   string
	Date       DateBucket
}

// Window returns the [from, to) range of a date bucket. Weeks start on Sunday.
// ok is false for DateAny and unknown buckets.
func (b DateBucket) Window(now time.Time) (from, to time.Time, ok bool) {
	today := feed.StartOfDay(now)
	week := feed.WeekStart(now)

	switch b {
	case DateToday:
		return today, today.AddDate(0, 0, 1), true
	case DateTomorrow:
		return today.AddDate(0, 0, 1), today.AddDate(0, 0, 2), true
	case DateThisWeek:
		return week, week.AddDate(0, 0, 7), true
	case DateThisWeekend:
		if today.Weekday() == time.Sunday {
			return today.AddDate(0, 0, -1), today.AddDate(0, 0, 1), true
		}
		saturday := week.AddDate(0, 0, 6)
		return saturday, saturday.AddDate(0, 0, 2), true
	case DateNextWeek:
		return week.AddDate(0, 0, 7), week.AddDate(0, 0, 14), true
	case DateThisMonth:
		first := feed.MonthStart(now)
		return first, first.AddDate(0, 1, 0), true
	}
	return time.Time{}, time.Time{}, false
}

type Filter struct {
	cfg feed.Config
}

func NewFilter(cfg feed.Config) *Filter {
	return &Filter{cfg: cfg}
}

// Apply selects the items shown on the map. Hidden statuses and semi-public items of
// other organizers are never shown. Past events are left out.
func (f *Filter) Apply(items []domain.FeedItem, q Query, viewer *domain.Viewer, now time.Time) []domain.FeedItem {
	categories := lo.SliceToMap(q.Categories, func(c string) (string, struct{}) {
		return c, struct{}{}
	})
	from, to, bounded := q.Date.Window(now)

	return lo.Filter(items, func(item domain.FeedItem, _ int) bool {
		if item.Status.Hidden() || !feed.Visible(item, viewer) {
			return false
		}

		moment := f.cfg.IsEphemeral(item.Source)
		if q.Content == ContentMoments && !moment || q.Content != ContentMoments && moment {
			return false
		}

		if len(categories) > 0 {
			if _, ok := categories[item.Category]; !ok {
				return false
			}
		}

		if !feed.MatchesLocation(item, q.Location) {
			return false
		}

		if moment {
			return true
		}
		if item.Date == nil || feed.IsPast(*item.Date, now) {
			return false
		}
		return !bounded || feed.Within(*item.Date, from, to)
	})
}
