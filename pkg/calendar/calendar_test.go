package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 4, 5, 0, time.UTC)
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", MonthKey(date(2024, time.January, 5)))
	assert.Equal(t, "2024-12", MonthKey(date(2024, time.December, 31)))
}

func TestWeekKey(t *testing.T) {
	// 2024-01-05 is a Friday in ISO week 1 of 2024
	assert.Equal(t, "2024-W01", WeekKey(date(2024, time.January, 5)))
	// 2023-01-01 is a Sunday belonging to ISO week 52 of 2022
	assert.Equal(t, "2022-W52", WeekKey(date(2023, time.January, 1)))
}

func TestStartOfMonth(t *testing.T) {
	got := StartOfMonth(date(2024, time.February, 29))
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestStartOfWeek(t *testing.T) {
	// Friday 2024-01-05 -> Monday 2024-01-01
	got := StartOfWeek(date(2024, time.January, 5))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	// Sunday rolls back to the previous Monday, not forward
	got = StartOfWeek(date(2024, time.January, 7))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	// Monday is its own week start
	got = StartOfWeek(date(2024, time.January, 1))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-01-05", FormatDate(date(2024, time.January, 5)))
}
