package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int    { return &v }
func moodPtr(m Mood) *Mood { return &m }

func TestScoreBaseline(t *testing.T) {
	// No weather, no history, no mood, no distance: base score, no reasons.
	got := Score(Restaurant{ID: "r1", Name: "아무집", Category: "한식"}, Context{Now: testNow})
	assert.Equal(t, 50, got.Score)
	assert.Empty(t, got.Reasons)
	assert.NotNil(t, got.Reasons)
}

func TestScoreWeatherFactor(t *testing.T) {
	tests := []struct {
		name       string
		condition  Condition
		category   string
		wantScore  int
		wantReason string
	}{
		{"rain boosts soup rice", ConditionRain, "국밥집", 80, "비 오는 날엔 따뜻한 국물이 딱!"},
		{"rain ignores italian", ConditionRain, "이탈리안", 50, ""},
		{"clear never contributes", ConditionClear, "국밥집", 50, ""},
		{"cloudy never contributes", ConditionCloudy, "국밥집", 50, ""},
		{"hot boosts cold noodles", ConditionHot, "냉면", 80, "더운 날엔 시원한 음식이 좋아요!"},
		{"snow boosts stew", ConditionSnow, "부대찌개", 80, "눈 오는 날엔 뜨끈한 음식이 최고예요!"},
		{"cold boosts soup", ConditionCold, "감자탕", 80, "추운 날엔 따뜻한 음식이 최고예요!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Context{Weather: &WeatherSnapshot{Condition: tt.condition}, Now: testNow}
			got := Score(Restaurant{ID: "r1", Category: tt.category}, ctx)
			assert.Equal(t, tt.wantScore, got.Score)
			if tt.wantReason == "" {
				assert.Empty(t, got.Reasons)
			} else {
				require.Len(t, got.Reasons, 1)
				assert.Equal(t, tt.wantReason, got.Reasons[0])
			}
		})
	}
}

func TestScoreRecencyTiers(t *testing.T) {
	candidate := Restaurant{ID: "r1", Category: "국밥"}
	tests := []struct {
		name       string
		meal       MealLogEntry
		wantScore  int
		wantReason string
	}{
		{
			"same restaurant today",
			MealLogEntry{RestaurantID: "r1", Category: "국밥", AteAt: testNow.Add(-2 * time.Hour)},
			0, "어제/오늘 다녀온 곳",
		},
		{
			"same restaurant yesterday",
			MealLogEntry{RestaurantID: "r1", Category: "국밥", AteAt: testNow.Add(-25 * time.Hour)},
			0, "어제/오늘 다녀온 곳",
		},
		{
			"same restaurant three days ago",
			MealLogEntry{RestaurantID: "r1", Category: "국밥", AteAt: testNow.Add(-3 * 24 * time.Hour)},
			20, "최근 다녀온 곳",
		},
		{
			"same restaurant too long ago",
			MealLogEntry{RestaurantID: "r1", Category: "국밥", AteAt: testNow.Add(-5 * 24 * time.Hour)},
			50, "",
		},
		{
			"similar category today",
			MealLogEntry{RestaurantID: "r2", Category: "순대국밥", AteAt: testNow.Add(-2 * time.Hour)},
			30, "어제/오늘 비슷한 음식을 드셨어요",
		},
		{
			"similar category two days ago",
			MealLogEntry{RestaurantID: "r2", Category: "찌개", AteAt: testNow.Add(-2 * 24 * time.Hour)},
			40, "최근 비슷한 음식을 드셨어요",
		},
		{
			"unrelated category",
			MealLogEntry{RestaurantID: "r2", Category: "초밥", AteAt: testNow.Add(-2 * time.Hour)},
			50, "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Context{RecentMeals: []MealLogEntry{tt.meal}, Now: testNow}
			got := Score(candidate, ctx)
			assert.Equal(t, tt.wantScore, got.Score)
			if tt.wantReason == "" {
				assert.Empty(t, got.Reasons)
			} else {
				require.Len(t, got.Reasons, 1)
				assert.Equal(t, tt.wantReason, got.Reasons[0])
			}
		})
	}
}

// The recency scan is first-match-wins over the caller's order, not the
// most severe applicable penalty. With a 2-day-old similar-category entry
// ahead of a same-day same-restaurant entry, the similar penalty applies.
// Documented behavior, kept as the product defines it.
func TestScoreRecencyFirstMatchWins(t *testing.T) {
	candidate := Restaurant{ID: "r1", Category: "국밥"}
	similarFirst := []MealLogEntry{
		{RestaurantID: "r9", Category: "찌개", AteAt: testNow.Add(-2 * 24 * time.Hour)},
		{RestaurantID: "r1", Category: "국밥", AteAt: testNow.Add(-1 * time.Hour)},
	}
	got := Score(candidate, Context{RecentMeals: similarFirst, Now: testNow})
	assert.Equal(t, 40, got.Score)
	require.Len(t, got.Reasons, 1)
	assert.Equal(t, "최근 비슷한 음식을 드셨어요", got.Reasons[0])

	// Swapped order hits the same-restaurant entry first.
	sameFirst := []MealLogEntry{similarFirst[1], similarFirst[0]}
	got = Score(candidate, Context{RecentMeals: sameFirst, Now: testNow})
	assert.Equal(t, 0, got.Score)
	require.Len(t, got.Reasons, 1)
	assert.Equal(t, "어제/오늘 다녀온 곳", got.Reasons[0])

	// Non-matching entries ahead of the match are scanned past.
	withNoise := []MealLogEntry{
		{RestaurantID: "r8", Category: "초밥", AteAt: testNow.Add(-6 * 24 * time.Hour)},
		{RestaurantID: "r1", Category: "국밥", AteAt: testNow.Add(-1 * time.Hour)},
	}
	got = Score(candidate, Context{RecentMeals: withNoise, Now: testNow})
	assert.Equal(t, 0, got.Score)
}

func TestScoreMoodFactor(t *testing.T) {
	tests := []struct {
		name       string
		mood       Mood
		category   string
		wantScore  int
		wantReason string
	}{
		{"hearty matches meat", MoodHearty, "삼겹살", 75, "든든하게 드시고 싶을 때 딱이에요"},
		{"light matches salad", MoodLight, "샐러드", 75, "가볍게 즐기기 좋은 메뉴예요"},
		{"special matches pasta", MoodSpecial, "파스타", 75, "특별한 날에 어울리는 곳이에요"},
		{"quick matches bunsik", MoodQuick, "분식", 75, "빠르게 먹기 좋은 곳이에요"},
		{"no match", MoodHearty, "샐러드", 50, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Context{Mood: moodPtr(tt.mood), Now: testNow}
			got := Score(Restaurant{ID: "r1", Category: tt.category}, ctx)
			assert.Equal(t, tt.wantScore, got.Score)
			if tt.wantReason == "" {
				assert.Empty(t, got.Reasons)
			} else {
				require.Len(t, got.Reasons, 1)
				assert.Equal(t, tt.wantReason, got.Reasons[0])
			}
		})
	}
}

func TestScoreDistanceTiers(t *testing.T) {
	tests := []struct {
		name       string
		distance   *int
		wantScore  int
		wantReason string
	}{
		{"very close", intPtr(250), 65, "가까워서 금방 갈 수 있어요"},
		{"tier boundary 300", intPtr(300), 65, "가까워서 금방 갈 수 있어요"},
		{"moderate walk rounds up", intPtr(500), 61, "적당한 거리예요"},
		{"far tier has no reason", intPtr(1000), 55, ""},
		{"beyond the last tier", intPtr(1500), 50, ""},
		{"absent distance", nil, 50, ""},
		{"negative distance is ignored", intPtr(-10), 50, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(Restaurant{ID: "r1", Category: "한식", DistanceM: tt.distance}, Context{Now: testNow})
			assert.Equal(t, tt.wantScore, got.Score)
			if tt.wantReason == "" {
				assert.Empty(t, got.Reasons)
			} else {
				require.Len(t, got.Reasons, 1)
				assert.Equal(t, tt.wantReason, got.Reasons[0])
			}
		})
	}
}

func TestScoreClampsToBounds(t *testing.T) {
	// 국밥 matches both the rain table and the hearty mood table; with a
	// close distance the raw total is 120 before the clamp.
	high := Score(
		Restaurant{ID: "r1", Category: "국밥", DistanceM: intPtr(100)},
		Context{
			Weather: &WeatherSnapshot{Condition: ConditionRain},
			Mood:    moodPtr(MoodHearty),
			Now:     testNow,
		},
	)
	assert.Equal(t, 100, high.Score)
	assert.Len(t, high.Reasons, 3)

	low := Score(
		Restaurant{ID: "r1", Category: "국밥"},
		Context{
			RecentMeals: []MealLogEntry{{RestaurantID: "r1", Category: "국밥", AteAt: testNow.Add(-time.Hour)}},
			Now:         testNow,
		},
	)
	assert.Equal(t, 0, low.Score)
}

func TestScoreReasonOrder(t *testing.T) {
	got := Score(
		Restaurant{ID: "r1", Category: "국밥", DistanceM: intPtr(200)},
		Context{
			Weather:     &WeatherSnapshot{Condition: ConditionRain},
			RecentMeals: []MealLogEntry{{RestaurantID: "r2", Category: "찌개", AteAt: testNow.Add(-2 * 24 * time.Hour)}},
			Mood:        moodPtr(MoodHearty),
			Now:         testNow,
		},
	)
	require.Len(t, got.Reasons, 4)
	assert.Equal(t, "비 오는 날엔 따뜻한 국물이 딱!", got.Reasons[0])
	assert.Equal(t, "최근 비슷한 음식을 드셨어요", got.Reasons[1])
	assert.Equal(t, "든든하게 드시고 싶을 때 딱이에요", got.Reasons[2])
	assert.Equal(t, "가까워서 금방 갈 수 있어요", got.Reasons[3])
}

func TestScoreSkipsMalformedMealEntries(t *testing.T) {
	candidate := Restaurant{ID: "r1", Category: "국밥"}
	meals := []MealLogEntry{
		{RestaurantID: "r1", Category: "국밥"},                                          // zero timestamp
		{RestaurantID: "r1", Category: "국밥", AteAt: testNow.Add(24 * time.Hour)},      // future
		{RestaurantID: "r1", Category: "국밥", AteAt: testNow.Add(-2 * 24 * time.Hour)}, // the real one
	}
	got := Score(candidate, Context{RecentMeals: meals, Now: testNow})
	assert.Equal(t, 20, got.Score)
	require.Len(t, got.Reasons, 1)
	assert.Equal(t, "최근 다녀온 곳", got.Reasons[0])
}

func TestScoreIdempotent(t *testing.T) {
	r := Restaurant{ID: "r1", Name: "국밥집", Category: "국밥", DistanceM: intPtr(450)}
	ctx := Context{
		Weather:     &WeatherSnapshot{Condition: ConditionRain, TempC: 14},
		RecentMeals: []MealLogEntry{{RestaurantID: "r2", Category: "초밥", AteAt: testNow.Add(-24 * time.Hour)}},
		Mood:        moodPtr(MoodHearty),
		Now:         testNow,
	}
	first := Score(r, ctx)
	second := Score(r, ctx)
	assert.Equal(t, first, second)
}
