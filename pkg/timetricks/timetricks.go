package timetricks

import (
	"fmt"
	"time"
)

const (
	dayFormat   = "20060102"
	clockFormat = "15:04"
	shortDay    = "01/02"

	weekPlusMinute = 7*24*time.Hour + time.Minute
	DaysPerWeek    = 7
)

func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

func Today(t time.Time) bool {
	return SameDay(t, time.Now().In(t.Location()))
}

func Tomorrow(t time.Time) bool {
	return Today(t.AddDate(0, 0, -1))
}

// TrimClock returns midnight at the start of t's calendar day in t's
// location.
func TrimClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func WithinWeek(t time.Time) bool {
	// Trim current time so they have no wall clock component, just
	// calendar date, and use it to compute the first minute of the coming week.
	// Then check if our time t occurs before then, as well as after the start
	// of today (minus a minute in case t falls at midnight).
	now := TrimClock(time.Now().In(t.Location()))
	firstMinuteOfNextWeek := now.Add(weekPlusMinute)
	return t.After(now.Add(-1*time.Minute)) && t.Before(firstMinuteOfNextWeek)
}

func SetClock(t time.Time, hour, minute time.Duration) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, int(hour), int(minute), 0, 0, t.Location())
}

// Clock formats t as a 24 hour "HH:MM" string.
func Clock(t time.Time) string {
	return t.Format(clockFormat)
}

// HourClock formats the start of a clock hour as "HH:MM". Hours wrap at 24.
func HourClock(hour int) string {
	return fmt.Sprintf("%02d:00", ((hour%24)+24)%24)
}

// Day is a human-readable name for t's calendar day relative to now: "Today",
// "Tomorrow", a weekday name inside the coming week, or a short date.
func Day(t time.Time) string {
	switch {
	case Today(t):
		return "Today"
	case Tomorrow(t):
		return "Tomorrow"
	case WithinWeek(t):
		return t.Weekday().String()
	default:
		return t.Format(shortDay)
	}
}

// DateRange returns the calendar days starting at start. A daily view is one
// day and a weekly view is DaysPerWeek days.
func DateRange(start time.Time, days int) []time.Time {
	if days < 1 {
		days = 1
	}
	first := TrimClock(start)
	result := make([]time.Time, days)
	for i := range result {
		result[i] = first.AddDate(0, 0, i)
	}
	return result
}

// UniqueDay returns a string representation of t that is unique by the day.
// For instance, two seperate times on the same calendar day return identical
// strings.
func UniqueDay(t time.Time) string {
	return t.Format(dayFormat)
}
