package feed

import (
	"strings"
	"time"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/samber/lo"
)

// Visible applies the semi-public rule: only the organizer sees those items.
func Visible(item domain.FeedItem, viewer *domain.Viewer) bool {
	if item.PrivacyLevel != domain.PrivacySemiPublic {
		return true
	}
	return viewer != nil && viewer.Email != "" && viewer.Email == item.OrganizerEmail
}

func (p *Pipeline) keepPastDated(item domain.FeedItem, tab domain.Tab, viewer *domain.Viewer, now time.Time) bool {
	if item.Date == nil || !IsPast(*item.Date, now) {
		return true
	}
	if p.cfg.IsEphemeral(item.Source) {
		return true
	}
	return tab == domain.TabFollowing && viewer.Follows(item.OrganizerEmail) && !item.IsPromotional
}

// MatchesDate applies the forYou date selection. Undated items only pass the
// pass-through selections. "This month" is a pass-through.
func MatchesDate(item domain.FeedItem, filter domain.DateFilter, now time.Time) bool {
	if filter.Day != nil {
		return item.Date != nil && SameDay(*item.Date, filter.Day.In(now.Location()))
	}

	switch filter.Bucket {
	case domain.DateToday:
		return item.Date != nil && SameDay(*item.Date, now)
	case domain.DateTomorrow:
		return item.Date != nil && SameDay(*item.Date, now.AddDate(0, 0, 1))
	case domain.DateThisWeek:
		start := WeekStart(now)
		return item.Date != nil && Within(*item.Date, start, start.AddDate(0, 0, 7))
	default:
		return true
	}
}

// itemHour is the local hour of the item's date, or -1 when undated.
func itemHour(item domain.FeedItem, loc *time.Location) int {
	if item.Date == nil {
		return -1
	}
	return item.Date.In(loc).Hour()
}

// MatchesTimeOfDay buckets the item's hour: morning [6,12), afternoon [12,17),
// evening [17,22), night [22,24) and [0,6).
func MatchesTimeOfDay(item domain.FeedItem, selected domain.TimeOfDay, loc *time.Location) bool {
	if selected == "" || selected == domain.TimeAll {
		return true
	}

	hour := itemHour(item, loc)
	switch selected {
	case domain.TimeMorning:
		return hour >= 6 && hour < 12
	case domain.TimeAfternoon:
		return hour >= 12 && hour < 17
	case domain.TimeEvening:
		return hour >= 17 && hour < 22
	case domain.TimeNight:
		return hour >= 22 || (hour >= 0 && hour < 6)
	}
	return false
}

// MatchesGenres keeps everything when nothing is selected.
func MatchesGenres(item domain.FeedItem, genres map[string]struct{}) bool {
	if len(genres) == 0 {
		return true
	}
	if _, ok := genres[strings.ToLower(item.Category)]; ok && item.Category != "" {
		return true
	}
	return lo.SomeBy(item.SceneTags, func(tag string) bool {
		_, ok := genres[strings.ToLower(tag)]
		return ok
	})
}

// MatchesLocation is a case-insensitive substring match on location OR venue name.
func MatchesLocation(item domain.FeedItem, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(item.Location), needle) ||
		strings.Contains(strings.ToLower(item.VenueName), needle)
}

func genreSet(genres []string) map[string]struct{} {
	set := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		if g = strings.ToLower(strings.TrimSpace(g)); g != "" {
			set[g] = struct{}{}
		}
	}
	return set
}
