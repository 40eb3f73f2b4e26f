package calendar

import (
	"time"
)

// Options parameterizes a view computation. Now and Anchor are explicit
// so the whole pipeline is deterministic; nothing below reads the wall
// clock.
type Options struct {
	Mode   ViewMode
	Anchor time.Time
	Now    time.Time
	Filter Filter

	// HourStart / HourEnd bound the hourly grid, both inclusive.
	HourStart int
	HourEnd   int
}

// DayView is one day of the day or week views: an all-day strip plus the
// hourly grid.
type DayView struct {
	Date    time.Time    `json:"date"`
	IsToday bool         `json:"is_today"`
	AllDay  []Occurrence `json:"all_day"`
	Hours   []HourBucket `json:"hours"`
}

// View is the full payload for one view mode. Exactly one of the
// mode-specific fields is populated.
type View struct {
	Mode   ViewMode     `json:"mode"`
	Anchor time.Time    `json:"anchor"`
	Range  VisibleRange `json:"range"`

	Days   []DayView    `json:"days,omitempty"`   // day, week
	Cells  []DayCell    `json:"cells,omitempty"`  // month
	Agenda []Occurrence `json:"agenda,omitempty"` // agenda

	// Warnings lists bucketing units that failed and were rendered empty.
	Warnings []string `json:"warnings,omitempty"`
}

// Build runs the full pipeline for one request: recurrence expansion,
// unification, filtering, then mode-specific bucketing. The dataset may
// be partial; the result is then valid but incomplete.
func Build(ds Dataset, opts Options) View {
	r := RangeFor(opts.Mode, opts.Anchor)

	ds.Events = ExpandRecurring(ds.Events, r.Start, r.End)
	occs := opts.Filter.Apply(Unify(ds))

	view := View{Mode: opts.Mode, Anchor: StartOfDay(opts.Anchor), Range: r}

	switch opts.Mode {
	case ViewDay, ViewWeek:
		for _, day := range r.Days() {
			dv, warnings := buildDay(occs, day, opts.HourStart, opts.HourEnd)
			dv.IsToday = SameDay(day, opts.Now)
			view.Days = append(view.Days, dv)
			view.Warnings = append(view.Warnings, warnings...)
		}
	case ViewMonth:
		view.Cells = MonthCells(occs, r)
		for i := range view.Cells {
			view.Cells[i].IsToday = SameDay(view.Cells[i].Date, opts.Now)
		}
	case ViewAgenda:
		view.Agenda = Agenda(occs, r)
	}

	return view
}

// buildDay assembles one day column. Hours whose computation failed
// degrade to an empty bucket and are reported as warnings.
func buildDay(occs []Occurrence, day time.Time, hourStart, hourEnd int) (DayView, []string) {
	onDay := OccurrencesOn(occs, day)

	dv := DayView{Date: day}
	for _, o := range onDay {
		if o.isAllDay() {
			dv.AllDay = append(dv.AllDay, o)
		}
	}

	var warnings []string
	for _, res := range HourBuckets(onDay, day, hourStart, hourEnd) {
		bucket, err := res.Get()
		if err != nil {
			warnings = append(warnings, err.Error())
			bucket = HourBucket{Hour: hourStart + len(dv.Hours)}
			if be, ok := err.(*BucketError); ok {
				bucket.Hour = be.Hour
			}
		}
		dv.Hours = append(dv.Hours, bucket)
	}
	return dv, warnings
}
