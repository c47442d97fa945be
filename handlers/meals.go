package handlers

import (
	"net/http"
	"strconv"
	"time"

	"lunch-roulette-api/config"
	"lunch-roulette-api/middleware"
	"lunch-roulette-api/models"

	"github.com/gin-gonic/gin"
)

type LogMealRequest struct {
	RestaurantID   string     `json:"restaurant_id" binding:"required"`
	RestaurantName string     `json:"restaurant_name" binding:"required"`
	Category       string     `json:"category"`
	AteAt          *time.Time `json:"ate_at"`
}

// LogMeal records that the caller ate at a restaurant. AteAt defaults to
// now so "I'm eating here" is a one-field request.
func LogMeal(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ateAt := time.Now()
	if req.AteAt != nil {
		if req.AteAt.After(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ate_at cannot be in the future"})
			return
		}
		ateAt = *req.AteAt
	}

	meal := models.MealLog{
		UserID:         userID,
		RestaurantID:   req.RestaurantID,
		RestaurantName: req.RestaurantName,
		Category:       req.Category,
		AteAt:          ateAt,
	}
	if err := config.DB.Create(&meal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log meal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Meal logged", "meal": meal})
}

// GetMyMeals returns the caller's meal history, newest first. The window
// defaults to the lookback the scorer uses.
func GetMyMeals(c *gin.Context) {
	userID := middleware.GetUserID(c)

	days := recentMealDays
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 90 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a number between 1 and 90"})
			return
		}
		days = parsed
	}

	var meals []models.MealLog
	config.DB.
		Where("user_id = ? AND ate_at >= ?", userID, time.Now().AddDate(0, 0, -days)).
		Order("ate_at desc").
		Find(&meals)

	c.JSON(http.StatusOK, gin.H{"count": len(meals), "days": days, "meals": meals})
}

// DeleteMeal removes one of the caller's own entries
func DeleteMeal(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var meal models.MealLog
	if err := config.DB.First(&meal, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal log not found"})
		return
	}
	if meal.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This meal log does not belong to you"})
		return
	}

	config.DB.Delete(&meal)
	c.JSON(http.StatusOK, gin.H{"message": "Meal log deleted", "meal_id": meal.ID})
}
