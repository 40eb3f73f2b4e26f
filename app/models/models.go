package models

// Raw record shapes as returned by the portal data API. The data API is
// the system of record; everything in this service is derived from these
// and rebuilt on every refresh.

// Event represents a calendar event
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	StartDate   FlexTime `json:"start_date"`
	EndDate     FlexTime `json:"end_date"`
	Location    string   `json:"location,omitempty"`
	Type        string   `json:"type"`
	ProjectID   string   `json:"project_id,omitempty"`
	ClientID    string   `json:"client_id,omitempty"`
	AllDay      bool     `json:"all_day,omitempty"`
	// Recurrence is an optional RRULE string (RFC 5545). Recurring events
	// are expanded into concrete instances per visible range.
	Recurrence string `json:"recurrence,omitempty"`
}

// Task represents a project task; only tasks with a due date show up on
// the calendar.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     FlexTime `json:"due_date"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	ProjectID   string   `json:"project_id,omitempty"`
	AssignedTo  string   `json:"assigned_to,omitempty"`
}

// Project represents a client project. The data API emits camelCase keys
// for the date fields on this collection.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	StartDate   FlexTime `json:"startDate"`
	EndDate     FlexTime `json:"endDate"`
	Progress    int      `json:"progress,omitempty"`
	ClientID    string   `json:"client_id,omitempty"`
}

// Client is a lookup record used to resolve client names.
type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is a lookup record used to resolve assignee names.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
