package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Distances alone separate the scores here: 65, 61, 55, 50.
func rankFixture() []Restaurant {
	return []Restaurant{
		{ID: "far", Name: "먼집", Category: "한식", DistanceM: intPtr(900)},
		{ID: "near", Name: "앞집", Category: "한식", DistanceM: intPtr(100)},
		{ID: "mid", Name: "중간집", Category: "한식", DistanceM: intPtr(450)},
		{ID: "off", Name: "딴동네집", Category: "한식", DistanceM: intPtr(2000)},
	}
}

func TestRankOrdersDescending(t *testing.T) {
	got := Rank(rankFixture(), Context{Now: testNow}, 10)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"near", "mid", "far", "off"}, idsOf(got))
	assert.Equal(t, 65, got[0].Score)
	assert.Equal(t, 61, got[1].Score)
	assert.Equal(t, 55, got[2].Score)
	assert.Equal(t, 50, got[3].Score)
}

func TestRankAppliesLimit(t *testing.T) {
	got := Rank(rankFixture(), Context{Now: testNow}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"near", "mid"}, idsOf(got))
}

func TestRankEmptyInput(t *testing.T) {
	got := Rank(nil, Context{Now: testNow}, DefaultLimit)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankZeroAndNegativeLimit(t *testing.T) {
	assert.Empty(t, Rank(rankFixture(), Context{Now: testNow}, 0))
	assert.Empty(t, Rank(rankFixture(), Context{Now: testNow}, -1))
}

// Equal scores keep the order the candidates arrived in.
func TestRankStableOnTies(t *testing.T) {
	candidates := []Restaurant{
		{ID: "a", Category: "한식"},
		{ID: "b", Category: "양식"},
		{ID: "c", Category: "중식"},
	}
	got := Rank(candidates, Context{Now: testNow}, 3)
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(got))
}

func TestRankDoesNotMutateInput(t *testing.T) {
	candidates := rankFixture()
	Rank(candidates, Context{Now: testNow}, 2)
	assert.Equal(t, "far", candidates[0].ID)
	assert.Equal(t, "off", candidates[3].ID)
}

func idsOf(scored []ScoredRestaurant) []string {
	ids := make([]string, 0, len(scored))
	for _, s := range scored {
		ids = append(ids, s.ID)
	}
	return ids
}
