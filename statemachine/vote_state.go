package statemachine

import (
	"errors"

	"lunch-roulette-api/models"
)

// Transition defines a valid session state change and who can perform it
type Transition struct {
	From  models.SessionStatus
	To    models.SessionStatus
	Actor string // "owner", "member", "system"
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Owner opens the poll to voting once the candidate list is settled
	{From: models.SessionOpen, To: models.SessionVoting, Actor: "owner"},
	// Owner can scrap a session that never started
	{From: models.SessionOpen, To: models.SessionCancelled, Actor: "owner"},
	// Owner closes the poll and the tally becomes final
	{From: models.SessionVoting, To: models.SessionClosed, Actor: "owner"},
	// Owner can abort a running vote
	{From: models.SessionVoting, To: models.SessionCancelled, Actor: "owner"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.SessionStatus
	To    models.SessionStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.SessionStatus) []models.SessionStatus {
	var nexts []models.SessionStatus
	seen := map[models.SessionStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.SessionStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.SessionStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
