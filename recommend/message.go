package recommend

import (
	"fmt"
	"strings"
)

const fallbackMessage = "주변에 추천할 만한 식당을 찾지 못했어요. 검색 범위를 넓혀볼까요?"

// Wording here is distinct from the per-candidate reason strings: these
// open the overall recommendation rather than explain one factor.
var weatherMessages = map[Condition]string{
	ConditionRain: "비가 오고 있어요. 따뜻한 국물 요리는 어때요?",
	ConditionSnow: "눈이 내리고 있어요. 뜨끈한 메뉴를 추천해요.",
	ConditionHot:  "날씨가 더워요. 시원한 메뉴는 어떠세요?",
	ConditionCold: "날씨가 추워요. 따뜻한 메뉴를 준비했어요.",
}

var moodMessages = map[Mood]string{
	MoodHearty:  "든든한 한 끼를 찾아봤어요.",
	MoodLight:   "가벼운 메뉴 위주로 골라봤어요.",
	MoodSpecial: "오늘은 조금 특별하게!",
	MoodQuick:   "빠르게 해결할 수 있는 곳이에요.",
}

// ComposeMessage builds the one-line summary shown above the ranked list.
// Fragment order is weather, mood, then the top pick; fragments join with
// single spaces. An empty ranking short-circuits to the fallback sentence
// no matter what context was supplied.
func ComposeMessage(ranked []ScoredRestaurant, weather *WeatherSnapshot, mood *Mood) string {
	if len(ranked) == 0 {
		return fallbackMessage
	}

	var parts []string
	if weather != nil {
		if msg, ok := weatherMessages[weather.Condition]; ok {
			parts = append(parts, msg)
		}
	}
	if mood != nil {
		if msg, ok := moodMessages[*mood]; ok {
			parts = append(parts, msg)
		}
	}
	top := ranked[0]
	parts = append(parts, fmt.Sprintf("%s(%s) 어떠세요?", top.Name, top.Category))

	return strings.Join(parts, " ")
}
