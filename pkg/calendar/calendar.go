// Package calendar derives period keys and period start times for
// time-bucketed reporting. Weeks follow ISO 8601 (Monday start, week
// numbering from time.ISOWeek); months are calendar months. The convention
// is fixed here so bucket boundaries do not depend on any caller's locale.
package calendar

import (
	"fmt"
	"time"
)

// MonthKey returns the month bucket key for t, e.g. "2024-01".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// WeekKey returns the ISO week bucket key for t, e.g. "2024-W03".
// The ISO year may differ from the calendar year near year boundaries.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// StartOfMonth returns the first instant of the month containing t,
// in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the first instant of the ISO week containing t
// (Monday 00:00:00), in t's location.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week started the previous Monday
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}

// FormatDate renders t as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
