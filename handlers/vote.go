package handlers

import (
	"net/http"

	"lunch-roulette-api/config"
	"lunch-roulette-api/middleware"
	"lunch-roulette-api/models"
	"lunch-roulette-api/statemachine"

	"github.com/gin-gonic/gin"
)

type StartVoteRequest struct {
	Candidates []struct {
		RestaurantID string `json:"restaurant_id" binding:"required"`
		Name         string `json:"name" binding:"required"`
		Category     string `json:"category"`
	} `json:"candidates" binding:"required,min=2"`
}

// StartVoteSession creates an OPEN session with a snapshotted candidate
// list (team owner only)
func StartVoteSession(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var team models.Team
	if err := config.DB.First(&team, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}
	if team.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the team owner can start a vote"})
		return
	}

	var req StartVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := models.VoteSession{
		TeamID:    team.ID,
		Status:    models.SessionOpen,
		StartedBy: userID,
	}
	for _, cand := range req.Candidates {
		session.Candidates = append(session.Candidates, models.VoteCandidate{
			RestaurantID: cand.RestaurantID,
			Name:         cand.Name,
			Category:     cand.Category,
		})
	}
	if err := config.DB.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vote session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Vote session created", "session": session})
}

// OpenVoting moves a session from OPEN to VOTING (owner only)
func OpenVoting(c *gin.Context) {
	transitionSession(c, models.SessionVoting, "Voting is open")
}

// CloseVoteSession moves a session to CLOSED and returns the tally
func CloseVoteSession(c *gin.Context) {
	transitionSession(c, models.SessionClosed, "Vote closed")
}

// CancelVoteSession aborts a session before or during voting
func CancelVoteSession(c *gin.Context) {
	transitionSession(c, models.SessionCancelled, "Vote session cancelled")
}

// transitionSession validates a state change against the session state
// machine, applies it, and responds with the session (plus the tally once
// closed).
func transitionSession(c *gin.Context, to models.SessionStatus, message string) {
	userID := middleware.GetUserID(c)

	var session models.VoteSession
	if err := config.DB.Preload("Candidates").Preload("Votes").First(&session, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vote session not found"})
		return
	}

	var team models.Team
	if err := config.DB.First(&team, session.TeamID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}
	actor := "member"
	if team.OwnerID == userID {
		actor = "owner"
	}

	if err := statemachine.CanTransition(session.Status, to, actor); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot change vote session state",
			"reason":        err.Error(),
			"current_state": session.Status,
		})
		return
	}

	config.DB.Model(&session).Update("status", to)
	session.Status = to

	resp := gin.H{"message": message, "session": session}
	if to == models.SessionClosed {
		resp["result"] = tallySession(&session)
	}
	c.JSON(http.StatusOK, resp)
}

type CastVoteRequest struct {
	CandidateID uint `json:"candidate_id" binding:"required"`
}

// CastVote records or replaces the caller's pick: one vote per user, last
// write wins.
func CastVote(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var session models.VoteSession
	if err := config.DB.Preload("Candidates").First(&session, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vote session not found"})
		return
	}
	if session.Status != models.SessionVoting {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Session is not accepting votes", "current_state": session.Status})
		return
	}
	if !isTeamMember(session.TeamID, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this team"})
		return
	}

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validCandidate := false
	for _, cand := range session.Candidates {
		if cand.ID == req.CandidateID {
			validCandidate = true
			break
		}
	}
	if !validCandidate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Candidate does not belong to this session"})
		return
	}

	var vote models.Vote
	if err := config.DB.Where("session_id = ? AND user_id = ?", session.ID, userID).First(&vote).Error; err == nil {
		config.DB.Model(&vote).Update("candidate_id", req.CandidateID)
		c.JSON(http.StatusOK, gin.H{"message": "Vote updated", "vote": vote})
		return
	}

	vote = models.Vote{SessionID: session.ID, UserID: userID, CandidateID: req.CandidateID}
	if err := config.DB.Create(&vote).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Vote recorded", "vote": vote})
}

// GetVoteSession returns a session with its live tally (members only)
func GetVoteSession(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var session models.VoteSession
	if err := config.DB.Preload("Candidates").Preload("Votes").First(&session, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vote session not found"})
		return
	}
	if !isTeamMember(session.TeamID, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "result": tallySession(&session)})
}

// tallySession counts votes per candidate. The winner is the candidate
// with the most votes; ties go to the earlier candidate in session order.
func tallySession(session *models.VoteSession) gin.H {
	counts := make(map[uint]int, len(session.Candidates))
	for _, v := range session.Votes {
		counts[v.CandidateID]++
	}

	var winner *models.VoteCandidate
	best := 0
	tally := make([]gin.H, 0, len(session.Candidates))
	for i := range session.Candidates {
		cand := session.Candidates[i]
		n := counts[cand.ID]
		tally = append(tally, gin.H{
			"candidate_id": cand.ID,
			"name":         cand.Name,
			"category":     cand.Category,
			"votes":        n,
		})
		if n > best {
			best = n
			winner = &session.Candidates[i]
		}
	}

	result := gin.H{"tally": tally, "total_votes": len(session.Votes)}
	if winner != nil {
		result["winner"] = gin.H{
			"candidate_id": winner.ID,
			"name":         winner.Name,
			"category":     winner.Category,
			"votes":        best,
		}
	}
	return result
}
