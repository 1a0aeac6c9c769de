package feed

import (
	"testing"
	"time"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMatchesDate(t *testing.T) {
	today := item("today", "o", withDate(dayAt(0, 20)))
	tomorrow := item("tomorrow", "o", withDate(dayAt(1, 9)))
	saturday := item("saturday", "o", withDate(dayAt(3, 23)))
	nextSunday := item("next-sunday", "o", withDate(dayAt(4, 1)))
	undated := item("undated", "o", withDate(nil))

	cases := []struct {
		name   string
		filter domain.DateFilter
		want   map[string]bool
	}{
		{"anytime", domain.AnyDate(), map[string]bool{"today": true, "tomorrow": true, "saturday": true, "next-sunday": true, "undated": true}},
		{"this month passes through", domain.DateFilter{Bucket: domain.DateThisMonth}, map[string]bool{"today": true, "tomorrow": true, "saturday": true, "next-sunday": true, "undated": true}},
		{"today", domain.DateFilter{Bucket: domain.DateToday}, map[string]bool{"today": true}},
		{"tomorrow", domain.DateFilter{Bucket: domain.DateTomorrow}, map[string]bool{"tomorrow": true}},
		{"this week", domain.DateFilter{Bucket: domain.DateThisWeek}, map[string]bool{"today": true, "tomorrow": true, "saturday": true}},
		{"concrete day", domain.OnDay(*dayAt(3, 0)), map[string]bool{"saturday": true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, it := range []domain.FeedItem{today, tomorrow, saturday, nextSunday, undated} {
				assert.Equal(t, tc.want[it.Title], MatchesDate(it, tc.filter, now), it.Title)
			}
		})
	}
}

func TestMatchesTimeOfDay(t *testing.T) {
	cases := []struct {
		hour int
		want domain.TimeOfDay
	}{
		{0, domain.TimeNight},
		{5, domain.TimeNight},
		{6, domain.TimeMorning},
		{11, domain.TimeMorning},
		{12, domain.TimeAfternoon},
		{16, domain.TimeAfternoon},
		{17, domain.TimeEvening},
		{21, domain.TimeEvening},
		{22, domain.TimeNight},
		{23, domain.TimeNight},
	}

	buckets := []domain.TimeOfDay{domain.TimeMorning, domain.TimeAfternoon, domain.TimeEvening, domain.TimeNight}
	for _, tc := range cases {
		it := item("x", "o", withDate(dayAt(1, tc.hour)))
		assert.True(t, MatchesTimeOfDay(it, domain.TimeAll, time.UTC))
		for _, b := range buckets {
			assert.Equal(t, b == tc.want, MatchesTimeOfDay(it, b, time.UTC), "hour %d bucket %s", tc.hour, b)
		}
	}
}

func TestMatchesTimeOfDayUndated(t *testing.T) {
	undated := item("x", "o", withDate(nil))

	assert.True(t, MatchesTimeOfDay(undated, domain.TimeAll, time.UTC))
	assert.False(t, MatchesTimeOfDay(undated, domain.TimeNight, time.UTC))
	assert.False(t, MatchesTimeOfDay(undated, domain.TimeMorning, time.UTC))
}

func TestMatchesGenres(t *testing.T) {
	genres := genreSet([]string{"Techno", "jazz"})

	assert.True(t, MatchesGenres(item("a", "o", withCategory("TECHNO")), genres))
	assert.True(t, MatchesGenres(item("b", "o", withTags("rooftop", "Jazz")), genres))
	assert.False(t, MatchesGenres(item("c", "o", withCategory("food"), withTags("brunch")), genres))
	assert.False(t, MatchesGenres(item("d", "o"), genres))
	assert.True(t, MatchesGenres(item("e", "o"), genreSet(nil)))
}

func TestMatchesLocationIsOr(t *testing.T) {
	assert.True(t, MatchesLocation(item("a", "o", withPlace("Brooklyn, NY", "")), "brooklyn"))
	assert.True(t, MatchesLocation(item("b", "o", withPlace("", "Brooklyn Bowl")), "BROOKLYN"))
	assert.True(t, MatchesLocation(item("c", "o", withPlace("Queens", "Brooklyn Steel")), "brooklyn"))
	assert.False(t, MatchesLocation(item("d", "o", withPlace("Queens", "Knockdown Center")), "brooklyn"))
	assert.True(t, MatchesLocation(item("e", "o"), ""))
}

func TestVisibleSemiPublic(t *testing.T) {
	it := item("a", "o", withPrivacy(domain.PrivacySemiPublic))

	assert.False(t, Visible(it, nil))
	assert.False(t, Visible(it, &domain.Viewer{Email: "someone@x.com"}))
	assert.True(t, Visible(it, &domain.Viewer{Email: "o@x.com"}))
	assert.True(t, Visible(item("b", "o"), nil))
}
