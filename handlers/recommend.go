package handlers

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"lunch-roulette-api/config"
	"lunch-roulette-api/middleware"
	"lunch-roulette-api/models"
	"lunch-roulette-api/recommend"

	"github.com/gin-gonic/gin"
)

// PlaceSearcher finds restaurant candidates around a coordinate.
type PlaceSearcher interface {
	SearchNearby(ctx context.Context, lat, lng float64, radius int) ([]recommend.Restaurant, error)
}

// WeatherFetcher returns the discretized weather near a coordinate.
type WeatherFetcher interface {
	Current(ctx context.Context, lat, lng float64) (*recommend.WeatherSnapshot, error)
}

// Wired in main, swapped for fakes in tests.
var (
	Places  PlaceSearcher
	Weather WeatherFetcher
)

const (
	defaultRadiusM = 800
	recentMealDays = 7
)

type RecommendRequest struct {
	Lat    float64 `json:"lat" binding:"required"`
	Lng    float64 `json:"lng" binding:"required"`
	Radius int     `json:"radius" binding:"omitempty,min=1,max=5000"`
	Mood   string  `json:"mood"`
	Limit  int     `json:"limit" binding:"omitempty,min=1,max=15"`
}

// Recommend searches nearby restaurants, layers weather, mood and the
// caller's recent meals on top, and returns the ranked picks with a
// composed one-line message.
func Recommend(c *gin.Context) {
	req, rctx, restaurants, ok := buildRecommendation(c)
	if !ok {
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = recommend.DefaultLimit
	}
	ranked := recommend.Rank(restaurants, rctx, limit)
	message := recommend.ComposeMessage(ranked, rctx.Weather, rctx.Mood)

	c.JSON(http.StatusOK, gin.H{
		"message":         message,
		"count":           len(ranked),
		"recommendations": ranked,
		"context": gin.H{
			"weather":           rctx.Weather,
			"mood":              req.Mood,
			"candidate_count":   len(restaurants),
			"recent_meal_count": len(rctx.RecentMeals),
		},
	})
}

// Spin is the roulette: rank as usual, then pick one of the top entries at
// random. Randomness lives here, never inside the scoring pipeline.
func Spin(c *gin.Context) {
	req, rctx, restaurants, ok := buildRecommendation(c)
	if !ok {
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = recommend.DefaultLimit
	}
	ranked := recommend.Rank(restaurants, rctx, limit)
	if len(ranked) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": recommend.ComposeMessage(nil, rctx.Weather, rctx.Mood),
			"pick":    nil,
			"pool":    ranked,
		})
		return
	}

	pick := ranked[rand.Intn(len(ranked))]
	c.JSON(http.StatusOK, gin.H{
		"message": recommend.ComposeMessage([]recommend.ScoredRestaurant{pick}, rctx.Weather, rctx.Mood),
		"pick":    pick,
		"pool":    ranked,
	})
}

// buildRecommendation binds the request, gathers candidates, weather and
// recent history, and assembles the scoring context. A weather outage
// degrades to no weather factor; a place-search outage is a hard error.
func buildRecommendation(c *gin.Context) (RecommendRequest, recommend.Context, []recommend.Restaurant, bool) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, recommend.Context{}, nil, false
	}

	var mood *recommend.Mood
	if req.Mood != "" {
		m, ok := recommend.ParseMood(req.Mood)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mood. Must be: hearty, light, special, or quick"})
			return req, recommend.Context{}, nil, false
		}
		mood = &m
	}

	radius := req.Radius
	if radius == 0 {
		radius = defaultRadiusM
	}

	restaurants, err := Places.SearchNearby(c.Request.Context(), req.Lat, req.Lng, radius)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Place search failed", "detail": err.Error()})
		return req, recommend.Context{}, nil, false
	}

	weather, err := Weather.Current(c.Request.Context(), req.Lat, req.Lng)
	if err != nil {
		log.Printf("⚠️ Weather unavailable, scoring without it: %v", err)
		weather = nil
	}

	now := time.Now()
	rctx := recommend.Context{
		Weather:     weather,
		RecentMeals: recentMealsFor(middleware.GetUserID(c), now),
		Mood:        mood,
		Now:         now,
	}
	return req, rctx, restaurants, true
}

// recentMealsFor loads the caller's lookback window, most recent first, so
// the first-match-wins scan sees the freshest entry first.
func recentMealsFor(userID uint, now time.Time) []recommend.MealLogEntry {
	var logs []models.MealLog
	config.DB.
		Where("user_id = ? AND ate_at >= ?", userID, now.AddDate(0, 0, -recentMealDays)).
		Order("ate_at desc").
		Find(&logs)

	entries := make([]recommend.MealLogEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, recommend.MealLogEntry{
			RestaurantID: l.RestaurantID,
			Category:     l.Category,
			AteAt:        l.AteAt,
		})
	}
	return entries
}
