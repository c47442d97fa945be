package recommend

import (
	"math"
	"time"
)

// Factor weights. Every factor is additive on the base; none reads another.
const (
	scoreBase      = 50.0
	weightWeather  = 30.0
	weightRecency  = 50.0
	weightMood     = 25.0
	weightDistance = 15.0
)

const hoursPerDay = 24

// Reason strings shown to the user, one per factor that fired.
const (
	reasonVisitedToday    = "어제/오늘 다녀온 곳"
	reasonVisitedRecently = "최근 다녀온 곳"
	reasonSimilarToday    = "어제/오늘 비슷한 음식을 드셨어요"
	reasonSimilarRecently = "최근 비슷한 음식을 드셨어요"
	reasonVeryClose       = "가까워서 금방 갈 수 있어요"
	reasonModerateWalk    = "적당한 거리예요"
)

// Score computes one candidate's suitability for right now. Pure: identical
// inputs (including Context.Now) give identical output.
//
// Contributions accumulate as float64 and round once at the end, so the
// fractional mid-distance tier (+10.5) is preserved until the final clamp.
func Score(r Restaurant, ctx Context) ScoredRestaurant {
	total := scoreBase
	reasons := []string{}

	// Reason order is fixed: weather, recency, mood, distance.
	if delta, reason := weatherFactor(r, ctx.Weather); delta != 0 {
		total += delta
		reasons = append(reasons, reason)
	}
	if delta, reason := recencyFactor(r, ctx.RecentMeals, ctx.Now); delta != 0 {
		total += delta
		reasons = append(reasons, reason)
	}
	if delta, reason := moodFactor(r, ctx.Mood); delta != 0 {
		total += delta
		reasons = append(reasons, reason)
	}
	if delta, reason := distanceFactor(r); delta != 0 {
		total += delta
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	return ScoredRestaurant{
		Restaurant: r,
		Score:      clampScore(total),
		Reasons:    reasons,
	}
}

// weatherFactor is all-or-nothing: the full weight when the candidate's
// category matches any bonus food for the condition, zero otherwise.
// clear and cloudy have no bonus table and contribute nothing.
func weatherFactor(r Restaurant, w *WeatherSnapshot) (float64, string) {
	if w == nil {
		return 0, ""
	}
	foods, ok := weatherBonusFoods[w.Condition]
	if !ok {
		return 0, ""
	}
	if matchesAny(r.Category, foods) {
		return weightWeather, weatherReasons[w.Condition]
	}
	return 0, ""
}

// recencyFactor scans the meal list in caller order and applies the FIRST
// entry that produces a penalty. This is deliberately first-match-wins, not
// worst-match: callers control severity by ordering the list.
//
// Tiers: same restaurant within a day −50, within 3 days −30; similar
// category within a day −20, within 3 days −10.
func recencyFactor(r Restaurant, meals []MealLogEntry, now time.Time) (float64, string) {
	for _, m := range meals {
		// Zero or future timestamps are malformed input; skip the entry
		// rather than fail the candidate.
		if m.AteAt.IsZero() || m.AteAt.After(now) {
			continue
		}
		days := int(now.Sub(m.AteAt).Hours()) / hoursPerDay
		if days > 3 {
			continue
		}
		if m.RestaurantID != "" && m.RestaurantID == r.ID {
			if days <= 1 {
				return -weightRecency, reasonVisitedToday
			}
			return -weightRecency * 0.6, reasonVisitedRecently
		}
		if sameCategoryGroup(m.Category, r.Category) {
			if days <= 1 {
				return -weightRecency * 0.4, reasonSimilarToday
			}
			return -weightRecency * 0.2, reasonSimilarRecently
		}
	}
	return 0, ""
}

// moodFactor mirrors the weather factor: full weight on any keyword match.
func moodFactor(r Restaurant, mood *Mood) (float64, string) {
	if mood == nil {
		return 0, ""
	}
	foods, ok := moodFoods[*mood]
	if !ok {
		return 0, ""
	}
	if matchesAny(r.Category, foods) {
		return weightMood, moodReasons[*mood]
	}
	return 0, ""
}

// distanceFactor is tiered; only the two closest tiers carry a reason.
// An absent or negative distance contributes nothing.
func distanceFactor(r Restaurant) (float64, string) {
	if r.DistanceM == nil {
		return 0, ""
	}
	d := *r.DistanceM
	switch {
	case d < 0:
		return 0, ""
	case d <= 300:
		return weightDistance, reasonVeryClose
	case d <= 500:
		return weightDistance * 0.7, reasonModerateWalk
	case d <= 1000:
		return weightDistance * 0.3, ""
	}
	return 0, ""
}

func clampScore(total float64) int {
	s := int(math.Round(total))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
