package calendar

import (
	"fmt"
	"log"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/contentcrush/portalcc-sub007/app/models"
)

// maxInstancesPerEvent caps the expansion of a single recurring event so
// a pathological RRULE cannot flood a view.
const maxInstancesPerEvent = 366

// ExpandRecurring replaces events carrying an RRULE with their concrete
// instances inside the window [from, to] (inclusive days). Each instance
// keeps the original duration and gets a derived id of the form
// "<id>@<yyyymmdd>". Events without a rule, or with a rule that fails to
// parse, pass through unchanged.
func ExpandRecurring(events []models.Event, from, to time.Time) []models.Event {
	out := make([]models.Event, 0, len(events))
	windowEnd := StartOfDay(to).AddDate(0, 0, 1)

	for _, ev := range events {
		if ev.Recurrence == "" || !ev.StartDate.Valid() || !ev.EndDate.Valid() {
			out = append(out, ev)
			continue
		}

		rule, err := rrule.StrToRRule(ev.Recurrence)
		if err != nil {
			log.Printf("Ignoring unparseable recurrence on event %s: %v", ev.ID, err)
			out = append(out, ev)
			continue
		}
		rule.DTStart(ev.StartDate.Time)

		starts := rule.Between(StartOfDay(from), windowEnd, true)
		if len(starts) > maxInstancesPerEvent {
			log.Printf("Recurring event %s truncated to %d instances", ev.ID, maxInstancesPerEvent)
			starts = starts[:maxInstancesPerEvent]
		}

		duration := ev.EndDate.Sub(ev.StartDate.Time)
		for _, start := range starts {
			inst := ev
			inst.ID = fmt.Sprintf("%s@%s", ev.ID, start.Format("20060102"))
			inst.StartDate = models.FlexTime{Time: start}
			inst.EndDate = models.FlexTime{Time: start.Add(duration)}
			inst.Recurrence = ""
			out = append(out, inst)
		}
	}
	return out
}
