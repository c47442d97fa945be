package handlers

import (
	"net/http"

	"lunch-roulette-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetMoods lists the mood choices the recommendation request accepts
func GetMoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"moods": []gin.H{
			{"value": "hearty", "label": "든든하게"},
			{"value": "light", "label": "가볍게"},
			{"value": "special", "label": "특별하게"},
			{"value": "quick", "label": "빨리"},
		},
	})
}

// GetStateMachineInfo returns the vote session lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	info := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"CLOSED", "CANCELLED"},
		"description":     "Team Lunch Vote Session Lifecycle State Machine",
	})
}
