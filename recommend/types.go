package recommend

import "time"

// Condition is the discretized weather bucket the scorer understands.
type Condition string

const (
	ConditionClear  Condition = "clear"
	ConditionCloudy Condition = "cloudy"
	ConditionRain   Condition = "rain"
	ConditionSnow   Condition = "snow"
	ConditionHot    Condition = "hot"
	ConditionCold   Condition = "cold"
)

// Mood is the diner's self-declared appetite for this request.
type Mood string

const (
	MoodHearty  Mood = "hearty"
	MoodLight   Mood = "light"
	MoodSpecial Mood = "special"
	MoodQuick   Mood = "quick"
)

// ParseMood maps a request string onto a known mood.
// Unknown values return ok=false and the caller should treat mood as absent.
func ParseMood(s string) (Mood, bool) {
	switch Mood(s) {
	case MoodHearty, MoodLight, MoodSpecial, MoodQuick:
		return Mood(s), true
	}
	return "", false
}

// Restaurant is one candidate in a ranking call. ID is the stable key used
// to detect "ate here before"; everything else is display data.
type Restaurant struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Address   string   `json:"address"`
	DistanceM *int     `json:"distance_m,omitempty"` // absent for catalog-sourced entries
	Rating    *float64 `json:"rating,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Link      string   `json:"link,omitempty"`
	Lat       float64  `json:"lat,omitempty"`
	Lng       float64  `json:"lng,omitempty"`
}

// WeatherSnapshot is the already-discretized weather at request time.
type WeatherSnapshot struct {
	Condition   Condition `json:"condition"`
	TempC       float64   `json:"temp_c"`
	Description string    `json:"description"`
	Foods       []string  `json:"foods,omitempty"`
}

// MealLogEntry is one "ate here at this time" fact. The caller filters the
// list to its lookback window before passing it in.
type MealLogEntry struct {
	RestaurantID string    `json:"restaurant_id"`
	Category     string    `json:"category"`
	AteAt        time.Time `json:"ate_at"`
}

// Context carries the signals a single scoring call reads. Now is injected
// by the caller so repeated calls with identical inputs give identical output.
type Context struct {
	Weather     *WeatherSnapshot
	RecentMeals []MealLogEntry
	Mood        *Mood
	Now         time.Time
}

// ScoredRestaurant is a candidate plus its score and the reasons that fired.
type ScoredRestaurant struct {
	Restaurant
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}
