package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

const icsProductID = "-//portalcc//calendar//PT"

// WriteICS renders the occurrences as a VCALENDAR stream. Point
// occurrences (task due dates, project milestones) become zero-length
// VEVENTs; resolved project and client names are folded into the
// description so external calendar apps keep the context.
func WriteICS(w io.Writer, occs []Occurrence, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icsProductID)

	for _, o := range occs {
		cal.Children = append(cal.Children, toVEvent(o, now))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

func toVEvent(o Occurrence, now time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, o.ID)
	ve.Props.SetText(ical.PropSummary, o.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, o.Start)
	ve.Props.SetDateTime(ical.PropDateTimeEnd, o.End)

	if desc := icsDescription(o); desc != "" {
		ve.Props.SetText(ical.PropDescription, desc)
	}
	if o.Location != "" {
		ve.Props.SetText(ical.PropLocation, o.Location)
	}
	return ve
}

func icsDescription(o Occurrence) string {
	var parts []string
	if o.Description != "" {
		parts = append(parts, o.Description)
	}
	if o.ProjectName != "" {
		parts = append(parts, "Projeto: "+o.ProjectName)
	}
	if o.ClientName != "" {
		parts = append(parts, "Cliente: "+o.ClientName)
	}
	if o.AssigneeName != "" {
		parts = append(parts, "Responsável: "+o.AssigneeName)
	}
	return strings.Join(parts, "\n")
}
