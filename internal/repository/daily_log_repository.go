package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyLogRepository interface {
	Upsert(ctx context.Context, record *domain.DailyLogRecord) error
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLogRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.DailyLogFilter) ([]domain.DailyLogRecord, error)
	ListByUserRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyLogRecord, error)
	ListByTeamRange(ctx context.Context, teamID string, from, to time.Time) ([]domain.DailyLog, error)
}

type dailyLogRepository struct {
	db *gorm.DB
}

func NewDailyLogRepository(db *gorm.DB) DailyLogRepository {
	return &dailyLogRepository{db: db}
}

// Upsert inserts the day or replaces the stored log of an existing
// (user_id, date) row. The record is reloaded so ID and timestamps reflect
// the stored row.
func (r *dailyLogRepository) Upsert(ctx context.Context, record *domain.DailyLogRecord) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"log", "updated_at"}),
		}).
		Create(record).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", record.UserID, dateParam(record.Date)).
		First(record).Error
}

func (r *dailyLogRepository) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLogRecord, error) {
	var record domain.DailyLogRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, dateParam(date)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *dailyLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DailyLogFilter) ([]domain.DailyLogRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("id DESC")

	if filter.From != nil {
		query = query.Where("date >= ?", dateParam(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", dateParam(*filter.To))
	}

	if c := filter.Cursor; c != nil {
		// DESC order: strictly older dates, or the same date with a smaller id
		query = query.Where("(date < ?) OR (date = ? AND id < ?)", c.Day, c.Day, c.ID)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.DailyLogRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByUserRange returns the user's logs with from <= date <= to, oldest first.
func (r *dailyLogRepository) ListByUserRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyLogRecord, error) {
	var records []domain.DailyLogRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date BETWEEN ? AND ?", dateParam(from), dateParam(to)).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

// ListByTeamRange returns every log of every team member with from <= date <= to.
func (r *dailyLogRepository) ListByTeamRange(ctx context.Context, teamID string, from, to time.Time) ([]domain.DailyLog, error) {
	var records []domain.DailyLogRecord
	err := r.db.WithContext(ctx).
		Select("daily_logs.*").
		Joins("JOIN users ON users.id = daily_logs.user_id").
		Where("users.team_id = ?", teamID).
		Where("daily_logs.date BETWEEN ? AND ?", dateParam(from), dateParam(to)).
		Order("daily_logs.date ASC").
		Order("daily_logs.id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	logs := make([]domain.DailyLog, len(records))
	for i, rec := range records {
		logs[i] = rec.Log
	}
	return logs, nil
}

// dateParam binds a calendar date as text so the driver never shifts it
// across a timezone boundary.
func dateParam(t time.Time) string {
	return t.Format(domain.DateLayout)
}
