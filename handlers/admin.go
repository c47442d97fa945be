package handlers

import (
	"net/http"

	"lunch-roulette-api/config"
	"lunch-roulette-api/models"

	"github.com/gin-gonic/gin"
)

// AdminGetAllUsers lists every account (admin only)
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	config.DB.Order("created_at desc").Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminGetStats returns rough usage counts (admin only)
func AdminGetStats(c *gin.Context) {
	var users, meals, teams, sessions, votes int64
	config.DB.Model(&models.User{}).Count(&users)
	config.DB.Model(&models.MealLog{}).Count(&meals)
	config.DB.Model(&models.Team{}).Count(&teams)
	config.DB.Model(&models.VoteSession{}).Count(&sessions)
	config.DB.Model(&models.Vote{}).Count(&votes)

	c.JSON(http.StatusOK, gin.H{
		"users":         users,
		"meal_logs":     meals,
		"teams":         teams,
		"vote_sessions": sessions,
		"votes":         votes,
	})
}
