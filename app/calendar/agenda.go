package calendar

import "sort"

// Agenda flattens the occurrences of the range into one chronological
// list. An occurrence spanning several days of the window appears once
// (first day wins); ties on the start instant keep unifier order.
func Agenda(occs []Occurrence, r VisibleRange) []Occurrence {
	seen := make(map[string]bool)
	var out []Occurrence
	for _, day := range r.Days() {
		for _, o := range OccurrencesOn(occs, day) {
			if seen[o.ID] {
				continue
			}
			seen[o.ID] = true
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
