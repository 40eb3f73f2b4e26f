package calendar

import (
	"time"

	"github.com/contentcrush/portalcc-sub007/app/models"
)

// Kind discriminates the three sources an occurrence can be derived from.
type Kind string

const (
	KindRegular Kind = "regular" // a calendar event kept as-is
	KindTask    Kind = "task"    // a task due date
	KindProject Kind = "project" // a project start or end milestone
)

// Color keys for derived occurrences. Regular events use "event-<type>".
const (
	ColorEventDefault = "event-default"
	ColorProjectStart = "project-start"
	ColorProjectEnd   = "project-end"
)

// Occurrence is a unified renderable calendar item. It is transient view
// state: rebuilt from the latest snapshot on every request, never stored.
type Occurrence struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Kind        Kind      `json:"kind"`
	ColorKey    string    `json:"color_key"`
	AllDay      bool      `json:"all_day,omitempty"`
	Location    string    `json:"location,omitempty"`

	// Kind-specific payload. Resolved names fall back to "" on lookup
	// misses; a half-loaded snapshot is still renderable.
	EventType    string `json:"event_type,omitempty"`
	ProjectID    string `json:"project_id,omitempty"`
	ProjectName  string `json:"project_name,omitempty"`
	ClientName   string `json:"client_name,omitempty"`
	AssigneeID   string `json:"assignee_id,omitempty"`
	AssigneeName string `json:"assignee_name,omitempty"`
	Priority     string `json:"priority,omitempty"`
	Status       string `json:"status,omitempty"`
	Progress     int    `json:"progress,omitempty"`
}

// Dataset is one consistent view of the five upstream collections. Any of
// the slices may be empty (e.g. a collection that has not loaded yet).
type Dataset struct {
	Events   []models.Event
	Tasks    []models.Task
	Projects []models.Project
	Clients  []models.Client
	Users    []models.User
}

// Unify merges events, task due dates, and project milestones into one
// occurrence list. Output order is stable: events in input order, then
// tasks in input order, then per-project milestones (start before end).
// Records missing a parseable date on the relevant field are excluded.
func Unify(ds Dataset) []Occurrence {
	projectNames := make(map[string]string, len(ds.Projects))
	projectClients := make(map[string]string, len(ds.Projects))
	for _, p := range ds.Projects {
		projectNames[p.ID] = p.Name
		projectClients[p.ID] = p.ClientID
	}
	clientNames := make(map[string]string, len(ds.Clients))
	for _, c := range ds.Clients {
		clientNames[c.ID] = c.Name
	}
	userNames := make(map[string]string, len(ds.Users))
	for _, u := range ds.Users {
		userNames[u.ID] = u.Name
	}

	out := make([]Occurrence, 0, len(ds.Events)+len(ds.Tasks)+2*len(ds.Projects))

	for _, ev := range ds.Events {
		if !ev.StartDate.Valid() || !ev.EndDate.Valid() {
			continue
		}
		out = append(out, Occurrence{
			ID:          ev.ID,
			Title:       ev.Title,
			Description: ev.Description,
			Start:       ev.StartDate.Time,
			End:         ev.EndDate.Time,
			Kind:        KindRegular,
			ColorKey:    eventColorKey(ev.Type),
			AllDay:      ev.AllDay,
			Location:    ev.Location,
			EventType:   ev.Type,
			ProjectID:   ev.ProjectID,
			ProjectName: projectNames[ev.ProjectID],
			ClientName:  clientNames[ev.ClientID],
		})
	}

	for _, t := range ds.Tasks {
		if !t.DueDate.Valid() {
			continue
		}
		out = append(out, Occurrence{
			ID:           "task-" + t.ID,
			Title:        "Tarefa: " + t.Title,
			Description:  t.Description,
			Start:        t.DueDate.Time,
			End:          t.DueDate.Time,
			Kind:         KindTask,
			ColorKey:     taskColorKey(t.Priority),
			ProjectID:    t.ProjectID,
			ProjectName:  projectNames[t.ProjectID],
			ClientName:   clientNames[projectClients[t.ProjectID]],
			AssigneeID:   t.AssignedTo,
			AssigneeName: userNames[t.AssignedTo],
			Priority:     t.Priority,
			Status:       t.Status,
		})
	}

	for _, p := range ds.Projects {
		if p.StartDate.Valid() {
			out = append(out, milestone(p, "start", "Início: ", ColorProjectStart, p.StartDate.Time, clientNames))
		}
		if p.EndDate.Valid() {
			out = append(out, milestone(p, "end", "Entrega: ", ColorProjectEnd, p.EndDate.Time, clientNames))
		}
	}

	return out
}

func milestone(p models.Project, suffix, prefix, colorKey string, at time.Time, clientNames map[string]string) Occurrence {
	return Occurrence{
		ID:          "project-" + p.ID + "-" + suffix,
		Title:       prefix + p.Name,
		Description: p.Description,
		Start:       at,
		End:         at,
		Kind:        KindProject,
		ColorKey:    colorKey,
		ProjectID:   p.ID,
		ProjectName: p.Name,
		ClientName:  clientNames[p.ClientID],
		Progress:    p.Progress,
	}
}

func eventColorKey(eventType string) string {
	if eventType == "" {
		return ColorEventDefault
	}
	return "event-" + eventType
}

func taskColorKey(priority string) string {
	if priority == "" {
		priority = "media"
	}
	return "task-" + priority
}

// IsPoint reports whether the occurrence is a point in time (task due
// dates and project milestones always are).
func (o Occurrence) IsPoint() bool {
	return o.Start.Equal(o.End)
}

// isAllDay reports whether the occurrence belongs in the all-day strip of
// the day and week views instead of the hourly grid. Tasks and milestones
// carry full-day semantics when their instant sits at midnight.
func (o Occurrence) isAllDay() bool {
	if o.AllDay {
		return true
	}
	return o.IsPoint() && o.Start.Hour() == 0 && o.Start.Minute() == 0
}
