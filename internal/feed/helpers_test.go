package feed

import (
	"time"

	"github.com/orgball2608/scenefeed/internal/domain"
)

// Wednesday; the week runs Sunday 18th to Saturday 24th.
var now = time.Date(2026, time.October, 21, 12, 0, 0, 0, time.UTC)

func dayAt(days, hour int) *time.Time {
	t := StartOfDay(now).AddDate(0, 0, days).Add(time.Duration(hour) * time.Hour)
	return &t
}

type itemOpt func(*domain.FeedItem)

func item(title, organizer string, opts ...itemOpt) domain.FeedItem {
	it := domain.FeedItem{
		ID:             title + "-" + organizer,
		Title:          title,
		OrganizerName:  organizer,
		OrganizerEmail: organizer + "@x.com",
		Source:         domain.SourceOrganicEvent,
		Status:         domain.StatusActive,
		PrivacyLevel:   domain.PrivacyPublic,
		Date:           dayAt(1, 19),
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

func withID(id string) itemOpt             { return func(i *domain.FeedItem) { i.ID = id } }
func withSource(s domain.Source) itemOpt   { return func(i *domain.FeedItem) { i.Source = s } }
func withStatus(s domain.Status) itemOpt   { return func(i *domain.FeedItem) { i.Status = s } }
func withDate(t *time.Time) itemOpt        { return func(i *domain.FeedItem) { i.Date = t } }
func withTimestamp(t *time.Time) itemOpt   { return func(i *domain.FeedItem) { i.Timestamp = t } }
func withCategory(c string) itemOpt        { return func(i *domain.FeedItem) { i.Category = c } }
func withTags(tags ...string) itemOpt      { return func(i *domain.FeedItem) { i.SceneTags = tags } }
func withDescription(d string) itemOpt     { return func(i *domain.FeedItem) { i.Description = d } }
func withPrivacy(p domain.Privacy) itemOpt { return func(i *domain.FeedItem) { i.PrivacyLevel = p } }
func withEmail(e string) itemOpt           { return func(i *domain.FeedItem) { i.OrganizerEmail = e } }
func promotional() itemOpt                 { return func(i *domain.FeedItem) { i.IsPromotional = true } }
func withPlace(location, venue string) itemOpt {
	return func(i *domain.FeedItem) { i.Location, i.VenueName = location, venue }
}

func ids(items []domain.FeedItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
