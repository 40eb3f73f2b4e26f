package models

import (
	"encoding/json"
	"strings"
	"time"
)

// flexLayouts are the date shapes the data API is known to emit. Some
// collections carry full RFC3339 instants, others plain calendar dates.
var flexLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexTime is a time.Time that decodes from any of the date formats the
// data API emits. A null, missing, or unparseable value decodes to the
// zero time rather than failing the whole collection; callers treat the
// zero value as "not set".
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not a string; leave the zero value so the record is excluded
		// downstream instead of aborting the decode of its siblings.
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range flexLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}

	t.Time = time.Time{}
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Valid reports whether the value carries an actual instant.
func (t FlexTime) Valid() bool {
	return !t.IsZero()
}
