package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BattleRepository interface {
	Create(ctx context.Context, battle *domain.Battle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Battle, error)
	ListActive(ctx context.Context) ([]domain.Battle, error)
	UpdateScores(ctx context.Context, id uuid.UUID, teamA, teamB float64, at time.Time) error
}

type battleRepository struct {
	db *gorm.DB
}

func NewBattleRepository(db *gorm.DB) BattleRepository {
	return &battleRepository{db: db}
}

func (r *battleRepository) Create(ctx context.Context, battle *domain.Battle) error {
	return r.db.WithContext(ctx).Create(battle).Error
}

func (r *battleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Battle, error) {
	var battle domain.Battle
	err := r.db.WithContext(ctx).First(&battle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &battle, nil
}

func (r *battleRepository) ListActive(ctx context.Context) ([]domain.Battle, error) {
	var battles []domain.Battle
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.BattleStatusActive).
		Order("created_at ASC").
		Find(&battles).Error
	return battles, err
}

func (r *battleRepository) UpdateScores(ctx context.Context, id uuid.UUID, teamA, teamB float64, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Battle{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"team_a_score": teamA,
			"team_b_score": teamB,
			"last_updated": at,
		})
	return rowsOrNotFound(res)
}
