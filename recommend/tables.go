package recommend

import "strings"

// Keyword tables are plain data so they stay auditable and independently
// testable. All matching is loose substring containment in either direction
// (handles compound Korean food names like "순대국밥" vs "국밥").

// weatherBonusFoods lists the categories each non-mild condition boosts.
// clear and cloudy have no entry: they never contribute.
var weatherBonusFoods = map[Condition][]string{
	ConditionRain: {"국밥", "한식", "칼국수", "수제비", "라면", "우동", "탕"},
	ConditionSnow: {"국밥", "찌개", "전골", "칼국수", "라면", "우동", "탕"},
	ConditionHot:  {"냉면", "일식", "회", "샐러드", "초밥"},
	ConditionCold: {"국밥", "탕", "찌개", "전골", "칼국수", "라면"},
}

var weatherReasons = map[Condition]string{
	ConditionRain: "비 오는 날엔 따뜻한 국물이 딱!",
	ConditionSnow: "눈 오는 날엔 뜨끈한 음식이 최고예요!",
	ConditionHot:  "더운 날엔 시원한 음식이 좋아요!",
	ConditionCold: "추운 날엔 따뜻한 음식이 최고예요!",
}

var moodFoods = map[Mood][]string{
	MoodHearty:  {"고기", "삼겹살", "갈비", "국밥", "찌개", "돈까스", "버거", "피자"},
	MoodLight:   {"샐러드", "쌀국수", "김밥", "죽", "연어", "포케", "샤브샤브"},
	MoodSpecial: {"스테이크", "파스타", "이탈리안", "오마카세", "와인", "브런치", "퓨전"},
	MoodQuick:   {"분식", "김밥", "햄버거", "버거", "샌드위치", "토스트", "패스트푸드"},
}

var moodReasons = map[Mood]string{
	MoodHearty:  "든든하게 드시고 싶을 때 딱이에요",
	MoodLight:   "가볍게 즐기기 좋은 메뉴예요",
	MoodSpecial: "특별한 날에 어울리는 곳이에요",
	MoodQuick:   "빠르게 먹기 좋은 곳이에요",
}

// categoryGroup names a canonical cuisine and the keywords treated as
// similar to it for the recency penalty.
type categoryGroup struct {
	Name     string
	Keywords []string
}

// categoryGroups is ordered so group resolution is deterministic even when
// a compound category could match more than one group.
var categoryGroups = []categoryGroup{
	{Name: "한식", Keywords: []string{"한식", "국밥", "찌개", "비빔밥", "백반", "정식"}},
	{Name: "일식", Keywords: []string{"일식", "초밥", "라멘", "우동", "돈까스", "회"}},
	{Name: "중식", Keywords: []string{"중식", "짜장면", "짬뽕", "탕수육"}},
	{Name: "양식", Keywords: []string{"양식", "스테이크", "파스타", "이탈리안", "피자"}},
	{Name: "분식", Keywords: []string{"분식", "김밥", "떡볶이", "라면"}},
	{Name: "고기", Keywords: []string{"고기", "삼겹살", "소고기", "갈비", "불고기"}},
	{Name: "치킨", Keywords: []string{"치킨", "통닭", "양념치킨"}},
	{Name: "패스트푸드", Keywords: []string{"패스트푸드", "햄버거", "버거"}},
}

// matches reports loose containment: a contains b or b contains a.
// Empty strings never match anything.
func matches(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func matchesAny(category string, keywords []string) bool {
	for _, k := range keywords {
		if matches(category, k) {
			return true
		}
	}
	return false
}

// resolveGroup returns the canonical group name for a category. A category
// no group claims is its own singleton group.
func resolveGroup(category string) string {
	for _, g := range categoryGroups {
		if matchesAny(category, g.Keywords) {
			return g.Name
		}
	}
	return category
}

// sameCategoryGroup reports whether two categories count as similar food.
func sameCategoryGroup(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return resolveGroup(a) == resolveGroup(b)
}
