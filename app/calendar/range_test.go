package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeFor_Day(t *testing.T) {
	anchor := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

	r := RangeFor(ViewDay, anchor)
	assert.Equal(t, day("2025-03-12"), r.Start)
	assert.Equal(t, day("2025-03-12"), r.End)
	assert.Len(t, r.Days(), 1)
}

func TestRangeFor_WeekMondayThroughSunday(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	r := RangeFor(ViewWeek, day("2025-03-12"))

	assert.Equal(t, day("2025-03-10"), r.Start)
	assert.Equal(t, day("2025-03-16"), r.End)
	assert.Equal(t, time.Monday, r.Start.Weekday())
	assert.Equal(t, time.Sunday, r.End.Weekday())
	assert.Len(t, r.Days(), 7)
}

func TestRangeFor_WeekAnchoredOnMonday(t *testing.T) {
	r := RangeFor(ViewWeek, day("2025-03-10"))
	assert.Equal(t, day("2025-03-10"), r.Start)
}

func TestRangeFor_MonthPaddedToWeekBoundaries(t *testing.T) {
	// March 2025 starts on a Saturday and ends on a Monday.
	r := RangeFor(ViewMonth, day("2025-03-12"))

	assert.Equal(t, day("2025-02-24"), r.Start)
	assert.Equal(t, day("2025-04-06"), r.End)
	assert.Equal(t, time.Monday, r.Start.Weekday())
	assert.Equal(t, time.Sunday, r.End.Weekday())
	assert.Zero(t, len(r.Days())%7)
}

func TestRangeFor_Agenda(t *testing.T) {
	r := RangeFor(ViewAgenda, day("2025-03-15"))

	assert.Equal(t, day("2025-03-01"), r.Start)
	assert.Equal(t, day("2025-03-29"), r.End)
	assert.Len(t, r.Days(), 29)
}

func TestParseViewMode(t *testing.T) {
	for _, valid := range []string{"day", "week", "month", "agenda"} {
		mode, err := ParseViewMode(valid)
		require.NoError(t, err)
		assert.Equal(t, ViewMode(valid), mode)
	}

	mode, err := ParseViewMode("")
	require.NoError(t, err)
	assert.Equal(t, ViewMonth, mode)

	_, err = ParseViewMode("year")
	assert.Error(t, err)
}

func TestNavigate(t *testing.T) {
	anchor := day("2025-03-12")
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, day("2025-03-13"), Navigate(ViewDay, anchor, NavNext, now))
	assert.Equal(t, day("2025-03-11"), Navigate(ViewDay, anchor, NavPrevious, now))
	assert.Equal(t, day("2025-03-19"), Navigate(ViewWeek, anchor, NavNext, now))
	assert.Equal(t, day("2025-04-12"), Navigate(ViewMonth, anchor, NavNext, now))
	assert.Equal(t, day("2025-02-12"), Navigate(ViewMonth, anchor, NavPrevious, now))
	assert.Equal(t, day("2025-03-26"), Navigate(ViewAgenda, anchor, NavNext, now))
	assert.Equal(t, day("2025-06-01"), Navigate(ViewWeek, anchor, NavToday, now))
}

func TestVisibleRange_Contains(t *testing.T) {
	r := VisibleRange{Start: day("2025-03-10"), End: day("2025-03-12")}

	assert.True(t, r.Contains(time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)))
}
