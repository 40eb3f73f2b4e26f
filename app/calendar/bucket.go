package calendar

import (
	"fmt"
	"time"

	"github.com/samber/mo"
)

// MonthDayCap is the number of occurrences shown per month-view cell
// before the remainder collapses into a "+N" overflow indicator.
const MonthDayCap = 3

// PositionedOccurrence is an occurrence annotated with its vertical
// placement inside a 100%-tall hour cell.
type PositionedOccurrence struct {
	Occurrence
	TopPercent    float64 `json:"top_percent"`
	HeightPercent float64 `json:"height_percent"`
}

// HourBucket holds the occurrences intersecting one hour of a day.
type HourBucket struct {
	Hour  int                    `json:"hour"`
	Items []PositionedOccurrence `json:"items"`
}

// DayCell is one day of the month view: occurrences grouped by day with
// no hourly breakdown, capped for display.
type DayCell struct {
	Date     time.Time    `json:"date"`
	IsToday  bool         `json:"is_today"`
	Items    []Occurrence `json:"items"`
	Overflow int          `json:"overflow"`
}

// BucketError identifies the unit of bucketing that failed. A failed unit
// degrades to an empty bucket at the view layer; it never aborts siblings.
type BucketError struct {
	Day    time.Time
	Hour   int
	Reason string
}

func (e *BucketError) Error() string {
	return fmt.Sprintf("bucket %s hour %d: %s", e.Day.Format("2006-01-02"), e.Hour, e.Reason)
}

// OccursOn reports whether the occurrence is visible on the given day.
// Overlap is calendar-day overlap in day's location: the day of the
// start, the day of the end, and every day strictly between count. This
// deliberately ignores time-of-day on the boundary days, so an event
// ending at 09:00 still shows on its final day.
func OccursOn(o Occurrence, day time.Time) bool {
	if SameDay(day, o.Start) || SameDay(day, o.End) {
		return true
	}
	d := StartOfDay(day)
	return d.After(o.Start) && d.Before(o.End)
}

// OccurrencesOn filters the list down to the occurrences visible on one
// day, preserving input order. A single occurrence that cannot be
// evaluated is skipped rather than failing the day.
func OccurrencesOn(occs []Occurrence, day time.Time) []Occurrence {
	var out []Occurrence
	for _, o := range occs {
		if occursOnSafe(o, day) {
			out = append(out, o)
		}
	}
	return out
}

func occursOnSafe(o Occurrence, day time.Time) (on bool) {
	defer func() {
		if recover() != nil {
			on = false
		}
	}()
	return OccursOn(o, day)
}

// HourBuckets computes the hourly grid of one day for the day and week
// views. Hours run from startHour through endHour inclusive. Each hour is
// computed independently and returns a typed result, so a malformed
// occurrence poisons at most its own hour.
func HourBuckets(occs []Occurrence, day time.Time, startHour, endHour int) []mo.Result[HourBucket] {
	results := make([]mo.Result[HourBucket], 0, endHour-startHour+1)
	for h := startHour; h <= endHour; h++ {
		results = append(results, hourBucket(occs, day, h))
	}
	return results
}

func hourBucket(occs []Occurrence, day time.Time, hour int) (res mo.Result[HourBucket]) {
	defer func() {
		if r := recover(); r != nil {
			res = mo.Err[HourBucket](&BucketError{Day: day, Hour: hour, Reason: fmt.Sprint(r)})
		}
	}()

	bucket := HourBucket{Hour: hour}
	for _, o := range occs {
		if o.isAllDay() {
			continue
		}
		pos, ok := positionInHour(o, day, hour)
		if !ok {
			continue
		}
		bucket.Items = append(bucket.Items, pos)
	}
	return mo.Ok(bucket)
}

// positionInHour decides hour membership and computes the proportional
// top/height placement. Start and end hours are clamped to the day, so a
// multi-day occurrence spans the whole grid on its middle days.
func positionInHour(o Occurrence, day time.Time, hour int) (PositionedOccurrence, bool) {
	startsToday := SameDay(day, o.Start)
	endsToday := SameDay(day, o.End)

	startHour := 0
	if startsToday {
		startHour = o.Start.Hour()
	} else if StartOfDay(day).Before(o.Start) {
		return PositionedOccurrence{}, false
	}
	endHour := 23
	if endsToday {
		endHour = o.End.Hour()
	} else if StartOfDay(day).After(o.End) {
		return PositionedOccurrence{}, false
	}

	// Membership: starts in this hour, ends in this hour past :00, or
	// passes straight through. An occurrence ending exactly on the hour
	// does not occupy it.
	switch {
	case startsToday && o.Start.Hour() == hour:
	case endsToday && o.End.Hour() == hour && o.End.Minute() > 0:
	case startHour < hour && endHour > hour:
	default:
		return PositionedOccurrence{}, false
	}

	top := 0.0
	if startsToday && o.Start.Hour() == hour {
		top = float64(o.Start.Minute()) / 60 * 100
	}
	endOffset := 100.0
	if endsToday && o.End.Hour() == hour {
		endOffset = float64(o.End.Minute()) / 60 * 100
	}
	height := endOffset - top
	if height < 0 {
		height = 0
	}

	return PositionedOccurrence{Occurrence: o, TopPercent: top, HeightPercent: height}, true
}

// MonthCells groups occurrences per day across the range with the
// month-view display cap applied.
func MonthCells(occs []Occurrence, r VisibleRange) []DayCell {
	days := r.Days()
	cells := make([]DayCell, 0, len(days))
	for _, day := range days {
		onDay := OccurrencesOn(occs, day)
		cell := DayCell{Date: day, Items: onDay}
		if len(onDay) > MonthDayCap {
			cell.Items = onDay[:MonthDayCap]
			cell.Overflow = len(onDay) - MonthDayCap
		}
		cells = append(cells, cell)
	}
	return cells
}
