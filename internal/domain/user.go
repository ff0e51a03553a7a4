package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"type:varchar(64);not null" json:"username"`
	TeamID    string    `gorm:"type:varchar(64);index" json:"team_id"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	Level     int       `gorm:"not null;default:1" json:"level"`
	XP        int       `gorm:"not null;default:0" json:"xp"`
	RPGClass  RPGClass  `gorm:"type:varchar(20);not null;default:'Villager'" json:"rpg_class"`
	Strength  float64   `gorm:"not null;default:0" json:"strength"`
	Vitality  float64   `gorm:"not null;default:0" json:"vitality"`
	Stamina   float64   `gorm:"not null;default:0" json:"stamina"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Progress returns the user's level/XP snapshot.
func (u *User) Progress() UserProgress {
	return UserProgress{XP: u.XP, Level: u.Level}
}

// Attributes returns the user's RPG attributes.
func (u *User) Attributes() Attributes {
	return Attributes{Strength: u.Strength, Vitality: u.Vitality, Stamina: u.Stamina}
}

// Location resolves the user's timezone, falling back to UTC.
func (u *User) Location() *time.Location {
	if u.Timezone != "" {
		if l, err := time.LoadLocation(u.Timezone); err == nil {
			return l
		}
	}
	return time.UTC
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	TeamID   string `json:"team_id" validate:"omitempty,max=64"`
	Timezone string `json:"timezone" validate:"required,timezone"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	TeamID     string     `json:"team_id,omitempty"`
	Timezone   string     `json:"timezone"`
	Level      int        `json:"level"`
	XP         int        `json:"xp"`
	RPGClass   RPGClass   `json:"rpg_class"`
	Attributes Attributes `json:"attributes"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		TeamID:     u.TeamID,
		Timezone:   u.Timezone,
		Level:      u.Level,
		XP:         u.XP,
		RPGClass:   u.RPGClass,
		Attributes: u.Attributes(),
		CreatedAt:  u.CreatedAt,
	}
}

// LeaderboardEntry is one player's place on a progression leaderboard.
type LeaderboardEntry struct {
	Rank     int       `json:"rank" example:"1"`
	UserID   uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Username string    `json:"username" example:"aria"`
	TeamID   string    `json:"team_id,omitempty" example:"team-red"`
	Level    int       `json:"level" example:"4"`
	XP       int       `json:"xp" example:"120"`
	RPGClass RPGClass  `json:"rpg_class" example:"Warrior"`
}

// PlayerLeaderboard ranks players by level, then XP within the level.
// @Description Players ranked by progression, highest first.
type PlayerLeaderboard struct {
	// Set for team leaderboards only
	TeamID   string             `json:"team_id,omitempty" example:"team-red"`
	Rankings []LeaderboardEntry `json:"rankings"`
}

// NewPlayerLeaderboard ranks users already sorted by the store.
func NewPlayerLeaderboard(teamID string, users []User) *PlayerLeaderboard {
	board := &PlayerLeaderboard{TeamID: teamID, Rankings: make([]LeaderboardEntry, 0, len(users))}
	for i, u := range users {
		board.Rankings = append(board.Rankings, LeaderboardEntry{
			Rank:     i + 1,
			UserID:   u.ID,
			Username: u.Username,
			TeamID:   u.TeamID,
			Level:    u.Level,
			XP:       u.XP,
			RPGClass: u.RPGClass,
		})
	}
	return board
}
