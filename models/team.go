package models

import "time"

// SessionStatus represents all possible states of a group vote session
type SessionStatus string

const (
	SessionOpen      SessionStatus = "OPEN"
	SessionVoting    SessionStatus = "VOTING"
	SessionClosed    SessionStatus = "CLOSED"
	SessionCancelled SessionStatus = "CANCELLED"
)

type Team struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	Name       string       `json:"name" gorm:"not null"`
	InviteCode string       `json:"invite_code" gorm:"uniqueIndex;not null"`
	OwnerID    uint         `json:"owner_id" gorm:"not null"`
	Owner      User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Members    []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type TeamMember struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TeamID    uint      `json:"team_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteSession is one round of "where are we eating" for a team.
type VoteSession struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	TeamID     uint            `json:"team_id" gorm:"not null;index"`
	Team       Team            `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Status     SessionStatus   `json:"status" gorm:"not null;default:'OPEN'"`
	StartedBy  uint            `json:"started_by" gorm:"not null"`
	Candidates []VoteCandidate `json:"candidates,omitempty" gorm:"foreignKey:SessionID"`
	Votes      []Vote          `json:"votes,omitempty" gorm:"foreignKey:SessionID"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// VoteCandidate snapshots a restaurant into a session so later map-search
// changes cannot shift a running vote.
type VoteCandidate struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	SessionID    uint   `json:"session_id" gorm:"not null;index"`
	RestaurantID string `json:"restaurant_id" gorm:"not null"`
	Name         string `json:"name" gorm:"not null"`
	Category     string `json:"category"`
}

// Vote is one member's current pick: one row per (session, user), updated
// in place on re-vote so the last write wins.
type Vote struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SessionID   uint      `json:"session_id" gorm:"not null;uniqueIndex:idx_session_user"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_session_user"`
	CandidateID uint      `json:"candidate_id" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
