package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressionFunc derives new progress and attributes from the user's
// current row.
type ProgressionFunc func(current *domain.User) (domain.UserProgress, domain.Attributes, error)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// UpdateProgression holds a row lock on the user while apply runs, so
	// concurrent awards are applied one after the other.
	UpdateProgression(ctx context.Context, id uuid.UUID, apply ProgressionFunc) error
	UpdateClass(ctx context.Context, id uuid.UUID, class domain.RPGClass) error
	// ListLeaderboard ranks players by level, then XP within the level.
	// An empty teamID ranks every player.
	ListLeaderboard(ctx context.Context, teamID string, limit int) ([]domain.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UpdateProgression(ctx context.Context, id uuid.UUID, apply ProgressionFunc) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user domain.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		progress, attrs, err := apply(&user)
		if err != nil {
			return err
		}

		return tx.Model(&domain.User{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"xp":       progress.XP,
				"level":    progress.Level,
				"strength": attrs.Strength,
				"vitality": attrs.Vitality,
				"stamina":  attrs.Stamina,
			}).Error
	})
}

func (r *userRepository) UpdateClass(ctx context.Context, id uuid.UUID, class domain.RPGClass) error {
	res := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("rpg_class", class)
	return rowsOrNotFound(res)
}

func (r *userRepository) ListLeaderboard(ctx context.Context, teamID string, limit int) ([]domain.User, error) {
	query := r.db.WithContext(ctx).Model(&domain.User{})
	if teamID != "" {
		query = query.Where("team_id = ?", teamID)
	}

	var users []domain.User
	err := query.
		Order("level DESC").
		Order("xp DESC").
		Order("id").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func rowsOrNotFound(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
