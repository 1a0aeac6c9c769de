package domain

import "time"

type Tab string

const (
	TabForYou    Tab = "forYou"
	TabFollowing Tab = "following"
	TabFood      Tab = "food"
	TabMap       Tab = "map"
)

func (t Tab) Valid() bool {
	switch t {
	case TabForYou, TabFollowing, TabFood, TabMap:
		return true
	}
	return false
}

type TimeOfDay string

const (
	TimeAll       TimeOfDay = "all"
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeAll, TimeMorning, TimeAfternoon, TimeEvening, TimeNight:
		return true
	}
	return false
}

type DateBucket string

const (
	DateAnytime   DateBucket = "Anytime"
	DateToday     DateBucket = "Today"
	DateTomorrow  DateBucket = "Tomorrow"
	DateThisWeek  DateBucket = "This week"
	DateThisMonth DateBucket = "This month"
)

// DateFilter is either a named bucket or a concrete calendar day.
type DateFilter struct {
	Bucket DateBucket
	Day    *time.Time
}

func AnyDate() DateFilter {
	return DateFilter{Bucket: DateAnytime}
}

func OnDay(day time.Time) DateFilter {
	return DateFilter{Day: &day}
}

// ParseDateFilter accepts a bucket name or a YYYY-MM-DD day in loc.
func ParseDateFilter(s string, loc *time.Location) DateFilter {
	switch DateBucket(s) {
	case "", DateAnytime:
		return AnyDate()
	case DateToday, DateTomorrow, DateThisWeek, DateThisMonth:
		return DateFilter{Bucket: DateBucket(s)}
	}
	if day, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return OnDay(day)
	}
	return AnyDate()
}

// FilterState is the viewer's filter selection for one page visit.
type FilterState struct {
	SelectedGenres []string
	LocationFilter string
	DateFilter     DateFilter
	SelectedTime   TimeOfDay
	ActiveTab      Tab
}

func DefaultFilterState() FilterState {
	return FilterState{
		DateFilter:   AnyDate(),
		SelectedTime: TimeAll,
		ActiveTab:    TabForYou,
	}
}
