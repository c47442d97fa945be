package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	assert.True(t, matches("순대국밥", "국밥"))
	assert.True(t, matches("국밥", "순대국밥"))
	assert.True(t, matches("국밥", "국밥"))
	assert.False(t, matches("국밥", "초밥"))
	assert.False(t, matches("", "국밥"))
	assert.False(t, matches("국밥", ""))
}

func TestResolveGroup(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"국밥", "한식"},
		{"순대국밥", "한식"},
		{"초밥", "일식"},
		{"짬뽕", "중식"},
		{"파스타", "양식"},
		{"떡볶이", "분식"},
		{"삼겹살", "고기"},
		{"양념치킨", "치킨"},
		{"수제버거", "패스트푸드"},
		{"멕시칸", "멕시칸"}, // unmapped category is its own group
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveGroup(tt.category), "category %q", tt.category)
	}
}

func TestSameCategoryGroup(t *testing.T) {
	assert.True(t, sameCategoryGroup("국밥", "찌개"))
	assert.True(t, sameCategoryGroup("순대국밥", "비빔밥"))
	assert.True(t, sameCategoryGroup("라멘", "돈까스"))
	assert.False(t, sameCategoryGroup("짜장면", "초밥"))
	assert.False(t, sameCategoryGroup("치킨", "피자"))

	// Singletons only match themselves.
	assert.True(t, sameCategoryGroup("멕시칸", "멕시칸"))
	assert.False(t, sameCategoryGroup("멕시칸", "타코"))

	assert.False(t, sameCategoryGroup("", "한식"))
	assert.False(t, sameCategoryGroup("한식", ""))
}

// Only the four active conditions carry bonus tables and reasons; the mild
// ones must stay absent so they can never contribute.
func TestWeatherTablesCoverage(t *testing.T) {
	for _, cond := range []Condition{ConditionRain, ConditionSnow, ConditionHot, ConditionCold} {
		assert.NotEmpty(t, weatherBonusFoods[cond], "foods for %s", cond)
		assert.NotEmpty(t, weatherReasons[cond], "reason for %s", cond)
	}
	for _, cond := range []Condition{ConditionClear, ConditionCloudy} {
		_, ok := weatherBonusFoods[cond]
		assert.False(t, ok, "%s must have no bonus table", cond)
	}
}

func TestMoodTablesCoverage(t *testing.T) {
	for _, mood := range []Mood{MoodHearty, MoodLight, MoodSpecial, MoodQuick} {
		assert.NotEmpty(t, moodFoods[mood], "foods for %s", mood)
		assert.NotEmpty(t, moodReasons[mood], "reason for %s", mood)
	}
}

func TestParseMood(t *testing.T) {
	for _, s := range []string{"hearty", "light", "special", "quick"} {
		mood, ok := ParseMood(s)
		assert.True(t, ok)
		assert.Equal(t, Mood(s), mood)
	}
	_, ok := ParseMood("hangry")
	assert.False(t, ok)
	_, ok = ParseMood("")
	assert.False(t, ok)
}
