package feed

import (
	"time"

	"github.com/jinzhu/now"
)

// calendar measures weeks from Sunday.
var calendar = &now.Config{WeekStartDay: time.Sunday}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return calendar.With(t).BeginningOfDay()
}

// SameDay compares calendar days in now's location.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a.In(b.Location())).Equal(StartOfDay(b))
}

// IsPast reports whether date falls on a day strictly before now's day.
func IsPast(date, now time.Time) bool {
	return StartOfDay(date.In(now.Location())).Before(StartOfDay(now))
}

// WeekStart returns the Sunday that opens t's week.
func WeekStart(t time.Time) time.Time {
	return calendar.With(t).BeginningOfWeek()
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return calendar.With(t).BeginningOfMonth()
}

// Within reports from <= t < to, with t converted to from's location.
func Within(t, from, to time.Time) bool {
	t = t.In(from.Location())
	return !t.Before(from) && t.Before(to)
}
