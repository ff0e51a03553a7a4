// Package events publishes progression and battle notifications.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TopicLevelUp             = "progression.level_up"
	TopicBattleScoresUpdated = "battle.scores_updated"
)

// Publisher delivers a JSON-encoded payload to a topic. Key selects the
// partition so events of one user or battle stay ordered.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

// LevelUpEvent is emitted when an XP application crosses at least one level.
type LevelUpEvent struct {
	UserID        uuid.UUID `json:"user_id"`
	PreviousLevel int       `json:"previous_level"`
	NewLevel      int       `json:"new_level"`
	XPTotal       int       `json:"xp_total"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BattleScoresUpdatedEvent is emitted after a contest has been recomputed.
type BattleScoresUpdatedEvent struct {
	BattleID   uuid.UUID `json:"battle_id"`
	TeamAID    string    `json:"team_a_id"`
	TeamBID    string    `json:"team_b_id"`
	TeamAScore float64   `json:"team_a_score"`
	TeamBScore float64   `json:"team_b_score"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, any) error { return nil }
