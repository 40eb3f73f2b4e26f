package calendar

import (
	"fmt"
	"time"
)

// ViewMode selects how the visible range is computed and rendered.
type ViewMode string

const (
	ViewDay    ViewMode = "day"
	ViewWeek   ViewMode = "week"
	ViewMonth  ViewMode = "month"
	ViewAgenda ViewMode = "agenda"
)

// agendaRadius is the number of days shown on each side of the anchor in
// the agenda view.
const agendaRadius = 14

// ParseViewMode validates a view mode coming from a query parameter.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewDay, ViewWeek, ViewMonth, ViewAgenda:
		return ViewMode(s), nil
	case "":
		return ViewMonth, nil
	}
	return "", fmt.Errorf("unknown view mode %q", s)
}

// VisibleRange is a contiguous run of calendar days, stored as midnights
// in the display timezone. Both ends are inclusive.
type VisibleRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RangeFor computes the visible range for a view mode around an anchor
// date. Weeks run Monday through Sunday; the month view is padded out to
// full weeks on both sides.
func RangeFor(mode ViewMode, anchor time.Time) VisibleRange {
	day := StartOfDay(anchor)
	switch mode {
	case ViewDay:
		return VisibleRange{Start: day, End: day}
	case ViewWeek:
		start := startOfWeek(day)
		return VisibleRange{Start: start, End: start.AddDate(0, 0, 6)}
	case ViewMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		last := first.AddDate(0, 1, -1)
		return VisibleRange{Start: startOfWeek(first), End: endOfWeek(last)}
	case ViewAgenda:
		return VisibleRange{Start: day.AddDate(0, 0, -agendaRadius), End: day.AddDate(0, 0, agendaRadius)}
	}
	return VisibleRange{Start: day, End: day}
}

// Days enumerates every day of the range in order.
func (r VisibleRange) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether the given instant falls on one of the range's
// days.
func (r VisibleRange) Contains(t time.Time) bool {
	d := StartOfDay(t.In(r.Start.Location()))
	return !d.Before(r.Start) && !d.After(r.End)
}

// NavAction is a navigation request against the current anchor.
type NavAction string

const (
	NavPrevious NavAction = "previous"
	NavNext     NavAction = "next"
	NavToday    NavAction = "today"
)

// Navigate returns the new anchor after applying a navigation action.
// The step size depends on the view mode; "today" snaps to now's day.
func Navigate(mode ViewMode, anchor time.Time, action NavAction, now time.Time) time.Time {
	if action == NavToday {
		return StartOfDay(now.In(anchor.Location()))
	}

	step := 1
	if action == NavPrevious {
		step = -1
	}

	switch mode {
	case ViewDay:
		return anchor.AddDate(0, 0, step)
	case ViewWeek:
		return anchor.AddDate(0, 0, 7*step)
	case ViewMonth:
		return anchor.AddDate(0, step, 0)
	case ViewAgenda:
		return anchor.AddDate(0, 0, agendaRadius*step)
	}
	return anchor
}

// StartOfDay truncates an instant to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(day time.Time) time.Time {
	// time.Weekday counts Sunday as 0; shift so Monday starts the week.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func endOfWeek(day time.Time) time.Time {
	return startOfWeek(day).AddDate(0, 0, 6)
}

// SameDay reports whether two instants fall on the same calendar day in
// a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
