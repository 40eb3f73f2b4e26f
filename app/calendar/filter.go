package calendar

// Filter selects occurrences by up to four dimensions. Empty dimensions
// impose no constraint; active dimensions combine as a conjunction.
type Filter struct {
	ProjectID  string `json:"project_id,omitempty"`
	AssigneeID string `json:"assignee_id,omitempty"`
	Kind       Kind   `json:"kind,omitempty"`
	Status     string `json:"status,omitempty"`
}

// IsZero reports whether no dimension is active.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Apply returns the occurrences matching every active dimension. An empty
// filter returns the input unchanged.
func (f Filter) Apply(occs []Occurrence) []Occurrence {
	if f.IsZero() {
		return occs
	}
	out := make([]Occurrence, 0, len(occs))
	for _, o := range occs {
		if f.Matches(o) {
			out = append(out, o)
		}
	}
	return out
}

// Matches tests one occurrence against every active dimension.
func (f Filter) Matches(o Occurrence) bool {
	if f.ProjectID != "" && o.ProjectID != f.ProjectID {
		return false
	}
	if f.AssigneeID != "" && o.AssigneeID != f.AssigneeID {
		return false
	}
	if f.Kind != "" && o.Kind != f.Kind {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	return true
}
