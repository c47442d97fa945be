package handlers

import (
	"net/http"
	"strings"

	"lunch-roulette-api/config"
	"lunch-roulette-api/middleware"
	"lunch-roulette-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateTeam creates a lunch crew and makes the caller its owner
func CreateTeam(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team := models.Team{
		Name:       req.Name,
		InviteCode: newInviteCode(),
		OwnerID:    userID,
	}
	if err := config.DB.Create(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}

	// Owner is also a member
	config.DB.Create(&models.TeamMember{TeamID: team.ID, UserID: userID})

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Team created",
		"team":        team,
		"invite_code": team.InviteCode,
	})
}

type JoinTeamRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

// JoinTeam adds the caller to a team by invite code
func JoinTeam(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var team models.Team
	if err := config.DB.Where("invite_code = ?", strings.TrimSpace(req.InviteCode)).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid invite code"})
		return
	}

	var existing models.TeamMember
	if result := config.DB.Where("team_id = ? AND user_id = ?", team.ID, userID).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already a member of this team"})
		return
	}

	config.DB.Create(&models.TeamMember{TeamID: team.ID, UserID: userID})
	c.JSON(http.StatusOK, gin.H{"message": "Joined team", "team": team})
}

// GetMyTeams lists the teams the caller belongs to
func GetMyTeams(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var memberships []models.TeamMember
	config.DB.Where("user_id = ?", userID).Find(&memberships)

	teamIDs := make([]uint, 0, len(memberships))
	for _, m := range memberships {
		teamIDs = append(teamIDs, m.TeamID)
	}

	var teams []models.Team
	if len(teamIDs) > 0 {
		config.DB.Where("id IN ?", teamIDs).Find(&teams)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(teams), "teams": teams})
}

// GetTeam returns one team with its members (members only)
func GetTeam(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var team models.Team
	if err := config.DB.Preload("Members.User").First(&team, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}
	if !isTeamMember(team.ID, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this team"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": team})
}

func isTeamMember(teamID, userID uint) bool {
	var member models.TeamMember
	return config.DB.Where("team_id = ? AND user_id = ?", teamID, userID).First(&member).Error == nil
}

// newInviteCode returns a short shareable code
func newInviteCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
