package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTime_Formats(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  time.Time
		valid bool
	}{
		{"rfc3339", `"2025-03-10T09:00:00Z"`, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), true},
		{"no timezone", `"2025-03-10T09:00:00"`, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), true},
		{"date only", `"2025-03-10"`, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"space separator", `"2025-03-10 09:00:00"`, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), true},
		{"null", `null`, time.Time{}, false},
		{"empty string", `""`, time.Time{}, false},
		{"garbage", `"not-a-date"`, time.Time{}, false},
		{"number", `1741597200`, time.Time{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ft FlexTime
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &ft), "flex decoding never errors")
			assert.Equal(t, tc.valid, ft.Valid())
			if tc.valid {
				assert.True(t, ft.Time.Equal(tc.want), "got %s", ft.Time)
			}
		})
	}
}

func TestFlexTime_BadDateDoesNotAbortSiblings(t *testing.T) {
	var events []Event
	body := `[
		{"id":"good","start_date":"2025-03-10T09:00:00Z","end_date":"2025-03-10T10:00:00Z"},
		{"id":"bad","start_date":"amanhã","end_date":"2025-03-10T10:00:00Z"}
	]`
	require.NoError(t, json.Unmarshal([]byte(body), &events))
	require.Len(t, events, 2)

	assert.True(t, events[0].StartDate.Valid())
	assert.False(t, events[1].StartDate.Valid())
}

func TestFlexTime_MarshalRoundTrip(t *testing.T) {
	ft := FlexTime{Time: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	out, err := json.Marshal(ft)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-10T09:00:00Z"`, string(out))

	out, err = json.Marshal(FlexTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
