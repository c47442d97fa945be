package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeMessageFallback(t *testing.T) {
	want := "주변에 추천할 만한 식당을 찾지 못했어요. 검색 범위를 넓혀볼까요?"
	assert.Equal(t, want, ComposeMessage(nil, nil, nil))

	// Context never leaks into the fallback.
	weather := &WeatherSnapshot{Condition: ConditionRain}
	assert.Equal(t, want, ComposeMessage([]ScoredRestaurant{}, weather, moodPtr(MoodHearty)))
}

func TestComposeMessageFragmentOrder(t *testing.T) {
	ranked := []ScoredRestaurant{{Restaurant: Restaurant{Name: "냉면집", Category: "일식"}, Score: 90}}
	weather := &WeatherSnapshot{Condition: ConditionHot}
	got := ComposeMessage(ranked, weather, moodPtr(MoodLight))
	assert.Equal(t, "날씨가 더워요. 시원한 메뉴는 어떠세요? 가벼운 메뉴 위주로 골라봤어요. 냉면집(일식) 어떠세요?", got)
}

func TestComposeMessageMildWeatherAddsNothing(t *testing.T) {
	ranked := []ScoredRestaurant{{Restaurant: Restaurant{Name: "국밥집", Category: "한식"}, Score: 70}}
	for _, cond := range []Condition{ConditionClear, ConditionCloudy} {
		got := ComposeMessage(ranked, &WeatherSnapshot{Condition: cond}, nil)
		assert.Equal(t, "국밥집(한식) 어떠세요?", got)
	}
}

func TestComposeMessageNoContext(t *testing.T) {
	ranked := []ScoredRestaurant{
		{Restaurant: Restaurant{Name: "앞집", Category: "분식"}, Score: 65},
		{Restaurant: Restaurant{Name: "뒷집", Category: "한식"}, Score: 60},
	}
	// Only the top pick is referenced.
	assert.Equal(t, "앞집(분식) 어떠세요?", ComposeMessage(ranked, nil, nil))
}

func TestComposeMessageMoodOnly(t *testing.T) {
	ranked := []ScoredRestaurant{{Restaurant: Restaurant{Name: "초밥집", Category: "일식"}, Score: 75}}
	got := ComposeMessage(ranked, nil, moodPtr(MoodSpecial))
	assert.Equal(t, "오늘은 조금 특별하게! 초밥집(일식) 어떠세요?", got)
}
