package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentcrush/portalcc-sub007/app/models"
)

func TestExpandRecurring_Weekly(t *testing.T) {
	events := []models.Event{
		{
			ID:         "ev-1",
			Title:      "Reunião semanal",
			StartDate:  ft("2025-03-03T10:00:00Z"),
			EndDate:    ft("2025-03-03T11:00:00Z"),
			Recurrence: "FREQ=WEEKLY;COUNT=10",
		},
	}

	got := ExpandRecurring(events, day("2025-03-10"), day("2025-03-16"))
	require.Len(t, got, 1)

	inst := got[0]
	assert.Equal(t, "ev-1@20250310", inst.ID)
	assert.Equal(t, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC), inst.StartDate.Time)
	assert.Equal(t, time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC), inst.EndDate.Time)
	assert.Empty(t, inst.Recurrence)
}

func TestExpandRecurring_NonRecurringPassesThrough(t *testing.T) {
	events := []models.Event{
		{ID: "ev-1", StartDate: ft("2025-03-10T09:00:00Z"), EndDate: ft("2025-03-10T10:00:00Z")},
	}

	got := ExpandRecurring(events, day("2025-03-10"), day("2025-03-16"))
	require.Len(t, got, 1)
	assert.Equal(t, "ev-1", got[0].ID)
}

func TestExpandRecurring_BadRuleKeepsBaseEvent(t *testing.T) {
	events := []models.Event{
		{
			ID:         "ev-1",
			StartDate:  ft("2025-03-10T09:00:00Z"),
			EndDate:    ft("2025-03-10T10:00:00Z"),
			Recurrence: "FREQ=NOPE",
		},
	}

	got := ExpandRecurring(events, day("2025-03-10"), day("2025-03-16"))
	require.Len(t, got, 1)
	assert.Equal(t, "ev-1", got[0].ID)
}

func TestExpandRecurring_DailyProducesOneInstancePerDay(t *testing.T) {
	events := []models.Event{
		{
			ID:         "standup",
			StartDate:  ft("2025-03-01T09:15:00Z"),
			EndDate:    ft("2025-03-01T09:30:00Z"),
			Recurrence: "FREQ=DAILY",
		},
	}

	got := ExpandRecurring(events, day("2025-03-10"), day("2025-03-16"))
	assert.Len(t, got, 7)
	for _, inst := range got {
		assert.Equal(t, 9, inst.StartDate.Hour())
		assert.Equal(t, 15*time.Minute, inst.EndDate.Sub(inst.StartDate.Time))
	}
}
