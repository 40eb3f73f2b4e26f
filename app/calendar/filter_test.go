package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixtures() []Occurrence {
	return []Occurrence{
		{ID: "1", Kind: KindTask, ProjectID: "5", Status: "pendente", AssigneeID: "u-1"},
		{ID: "2", Kind: KindTask, ProjectID: "5", Status: "concluida", AssigneeID: "u-1"},
		{ID: "3", Kind: KindTask, ProjectID: "7", Status: "pendente", AssigneeID: "u-2"},
		{ID: "4", Kind: KindRegular, ProjectID: "5", Status: ""},
	}
}

func TestFilter_Conjunction(t *testing.T) {
	f := Filter{ProjectID: "5", Status: "pendente"}

	got := f.Apply(filterFixtures())
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilter_EmptyIsIdentity(t *testing.T) {
	occs := filterFixtures()

	got := Filter{}.Apply(occs)
	assert.Equal(t, occs, got)
	assert.Len(t, got, len(occs))
}

func TestFilter_SingleDimensions(t *testing.T) {
	occs := filterFixtures()

	assert.Len(t, Filter{ProjectID: "5"}.Apply(occs), 3)
	assert.Len(t, Filter{AssigneeID: "u-2"}.Apply(occs), 1)
	assert.Len(t, Filter{Kind: KindRegular}.Apply(occs), 1)
	assert.Len(t, Filter{Status: "pendente"}.Apply(occs), 2)
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter{ProjectID: "999"}.Apply(filterFixtures())
	assert.Empty(t, got)
}
