package domain

import (
	"time"

	"github.com/google/uuid"
)

// BattleStatus is the lifecycle state of a team-vs-team contest.
type BattleStatus string

const (
	BattleStatusActive   BattleStatus = "active"
	BattleStatusFinished BattleStatus = "finished"
)

// Battle is a contest between two teams over a date range.
type Battle struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TeamAID     string       `gorm:"type:varchar(64);not null" json:"team_a_id"`
	TeamBID     string       `gorm:"type:varchar(64);not null" json:"team_b_id"`
	StartDate   time.Time    `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time    `gorm:"type:date;not null" json:"end_date"`
	Status      BattleStatus `gorm:"type:varchar(16);not null;default:'active';index" json:"status"`
	TeamAScore  float64      `gorm:"not null;default:0" json:"team_a_score"`
	TeamBScore  float64      `gorm:"not null;default:0" json:"team_b_score"`
	LastUpdated *time.Time   `json:"last_updated,omitempty"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (Battle) TableName() string {
	return "battles"
}

// CreateBattleRequest is the request body for starting a battle.
// @Description Team-vs-team contest definition.
type CreateBattleRequest struct {
	TeamAID   string `json:"team_a_id" validate:"required,max=64" example:"team-red"`
	TeamBID   string `json:"team_b_id" validate:"required,max=64" example:"team-blue"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02" example:"2024-01-10"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02" example:"2024-01-24"`
}

// BattleResponse is the response body for battle endpoints.
// @Description Contest with current team scores.
type BattleResponse struct {
	ID          uuid.UUID    `json:"id" example:"770e8400-e29b-41d4-a716-446655440002"`
	TeamAID     string       `json:"team_a_id" example:"team-red"`
	TeamBID     string       `json:"team_b_id" example:"team-blue"`
	StartDate   string       `json:"start_date" example:"2024-01-10"`
	EndDate     string       `json:"end_date" example:"2024-01-24"`
	Status      BattleStatus `json:"status" example:"active"`
	TeamAScore  float64      `json:"team_a_score" example:"15230.5"`
	TeamBScore  float64      `json:"team_b_score" example:"14980"`
	LastUpdated *time.Time   `json:"last_updated,omitempty"`
}

func (b *Battle) ToResponse() BattleResponse {
	return BattleResponse{
		ID:          b.ID,
		TeamAID:     b.TeamAID,
		TeamBID:     b.TeamBID,
		StartDate:   b.StartDate.Format(DateLayout),
		EndDate:     b.EndDate.Format(DateLayout),
		Status:      b.Status,
		TeamAScore:  b.TeamAScore,
		TeamBScore:  b.TeamBScore,
		LastUpdated: b.LastUpdated,
	}
}

// TeamStanding is one row of a battle leaderboard.
type TeamStanding struct {
	Rank   int     `json:"rank" example:"1"`
	TeamID string  `json:"team_id" example:"team-red"`
	Score  float64 `json:"score" example:"15230.5"`
}

// BattleLeaderboard ranks the teams of a battle.
// @Description Teams ranked by score, highest first.
type BattleLeaderboard struct {
	BattleID    uuid.UUID      `json:"battle_id"`
	Status      BattleStatus   `json:"status" example:"active"`
	Standings   []TeamStanding `json:"standings"`
	LastUpdated *time.Time     `json:"last_updated,omitempty"`
}
