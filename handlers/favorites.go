package handlers

import (
	"log"
	"net/http"
	"time"

	"lunch-roulette-api/config"
	"lunch-roulette-api/middleware"
	"lunch-roulette-api/models"
	"lunch-roulette-api/recommend"

	"github.com/gin-gonic/gin"
)

type AddFavoriteRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	Address      string `json:"address"`
	Link         string `json:"link"`
}

// AddFavorite saves a restaurant to the caller's list
func AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Favorite
	if result := config.DB.Where("user_id = ? AND restaurant_id = ?", userID, req.RestaurantID).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Restaurant already in favorites"})
		return
	}

	favorite := models.Favorite{
		UserID:       userID,
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Category:     req.Category,
		Address:      req.Address,
		Link:         req.Link,
	}
	if err := config.DB.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Favorite saved", "favorite": favorite})
}

// GetMyFavorites returns the caller's saved restaurants
func GetMyFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var favorites []models.Favorite
	config.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&favorites)
	c.JSON(http.StatusOK, gin.H{"count": len(favorites), "favorites": favorites})
}

// DeleteFavorite removes one of the caller's favorites
func DeleteFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var favorite models.Favorite
	if err := config.DB.First(&favorite, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	if favorite.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This favorite does not belong to you"})
		return
	}

	config.DB.Delete(&favorite)
	c.JSON(http.StatusOK, gin.H{"message": "Favorite deleted", "favorite_id": favorite.ID})
}

type FavoritesRecommendRequest struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Mood string  `json:"mood"`
}

// RecommendFromFavorites ranks the caller's saved restaurants instead of a
// map search. Catalog entries carry no distance, so only weather, history
// and mood move the scores.
func RecommendFromFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FavoritesRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var mood *recommend.Mood
	if req.Mood != "" {
		m, ok := recommend.ParseMood(req.Mood)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mood. Must be: hearty, light, special, or quick"})
			return
		}
		mood = &m
	}

	var favorites []models.Favorite
	config.DB.Where("user_id = ?", userID).Find(&favorites)

	candidates := make([]recommend.Restaurant, 0, len(favorites))
	for _, f := range favorites {
		candidates = append(candidates, recommend.Restaurant{
			ID:       f.RestaurantID,
			Name:     f.Name,
			Category: f.Category,
			Address:  f.Address,
			Link:     f.Link,
		})
	}

	var weather *recommend.WeatherSnapshot
	if req.Lat != 0 && req.Lng != 0 {
		var err error
		weather, err = Weather.Current(c.Request.Context(), req.Lat, req.Lng)
		if err != nil {
			log.Printf("⚠️ Weather unavailable, scoring without it: %v", err)
			weather = nil
		}
	}

	now := time.Now()
	rctx := recommend.Context{
		Weather:     weather,
		RecentMeals: recentMealsFor(userID, now),
		Mood:        mood,
		Now:         now,
	}

	ranked := recommend.Rank(candidates, rctx, recommend.DefaultLimit)
	c.JSON(http.StatusOK, gin.H{
		"message":         recommend.ComposeMessage(ranked, weather, mood),
		"count":           len(ranked),
		"recommendations": ranked,
	})
}
