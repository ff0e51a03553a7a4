package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/engine"
	"github.com/blaisecz/vital-quest/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultWindowDays is the default window for weekly stats and classification.
	DefaultWindowDays = 7

	// MaxWindowDays bounds how far back a window may reach.
	MaxWindowDays = 90
)

// ScoringService computes per-day scores and window statistics from stored logs.
type ScoringService interface {
	// Recovery scores the readiness of one calendar day.
	Recovery(ctx context.Context, userID uuid.UUID, date string) (*domain.RecoveryResult, error)
	// BattleScore computes the battle points of one calendar day.
	BattleScore(ctx context.Context, userID uuid.UUID, date string) (*domain.BattleScore, error)
	// Weekly summarises the last days calendar days, today included.
	Weekly(ctx context.Context, userID uuid.UUID, days int) (*domain.WeeklyStats, error)
}

type scoringService struct {
	dailyLogRepo repository.DailyLogRepository
	userRepo     repository.UserRepository
	formula      engine.RecoveryFormula
	now          func() time.Time
}

// NewScoringService creates a new ScoringService that scores recovery with formula.
func NewScoringService(dailyLogRepo repository.DailyLogRepository, userRepo repository.UserRepository, formula engine.RecoveryFormula) ScoringService {
	return &scoringService{
		dailyLogRepo: dailyLogRepo,
		userRepo:     userRepo,
		formula:      formula,
		now:          time.Now,
	}
}

func (s *scoringService) Recovery(ctx context.Context, userID uuid.UUID, date string) (*domain.RecoveryResult, error) {
	tracer := otel.Tracer("vital-quest-api/scoring")
	ctx, span := tracer.Start(ctx, "ScoringService.Recovery",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("log.date", date),
			attribute.String("recovery.formula", string(s.formula)),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	log, err := loadDay(ctx, s.dailyLogRepo, user, date)
	if err != nil {
		return nil, err
	}

	result := engine.ScoreRecoveryWith(log, s.formula)
	scoringRequests.WithLabelValues("recovery").Inc()
	recoveryStatus.WithLabelValues(string(result.Status)).Inc()

	span.SetAttributes(
		attribute.Int("recovery.score", result.Score),
		attribute.String("recovery.status", string(result.Status)),
		attribute.String("rhr.source", string(result.RHRSource)),
	)

	return &result, nil
}

func (s *scoringService) BattleScore(ctx context.Context, userID uuid.UUID, date string) (*domain.BattleScore, error) {
	tracer := otel.Tracer("vital-quest-api/scoring")
	ctx, span := tracer.Start(ctx, "ScoringService.BattleScore",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("log.date", date),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	log, err := loadDay(ctx, s.dailyLogRepo, user, date)
	if err != nil {
		return nil, err
	}

	result := engine.ScoreBattle(log)
	scoringRequests.WithLabelValues("battle").Inc()
	span.SetAttributes(attribute.Float64("battle.total", result.Total))

	return &result, nil
}

func (s *scoringService) Weekly(ctx context.Context, userID uuid.UUID, days int) (*domain.WeeklyStats, error) {
	tracer := otel.Tracer("vital-quest-api/scoring")
	ctx, span := tracer.Start(ctx, "ScoringService.Weekly",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	logs, err := windowLogs(ctx, s.dailyLogRepo, user, days, s.now())
	if err != nil {
		return nil, err
	}

	stats := engine.WeeklyStats(logs)
	scoringRequests.WithLabelValues("weekly").Inc()

	// Attach output payload for trace inspection
	if outputJSON, err := json.Marshal(stats); err == nil {
		span.SetAttributes(attribute.String("weekly.output", string(outputJSON)))
	}

	return &stats, nil
}

// windowLogs loads the user's logs for the last days calendar days in their
// timezone, today included, oldest first.
func windowLogs(ctx context.Context, repo repository.DailyLogRepository, user *domain.User, days int, now time.Time) ([]domain.DailyLog, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}
	if days > MaxWindowDays {
		return nil, fmt.Errorf("%w: days must be at most %d", domain.ErrInvalidInput, MaxWindowDays)
	}

	loc := user.Location()
	today := domain.LocalDate(now.In(loc), loc)
	from := today.AddDate(0, 0, -(days - 1))

	records, err := repo.ListByUserRange(ctx, user.ID, domain.StorageDate(from), domain.StorageDate(today))
	if err != nil {
		return nil, err
	}

	logs := make([]domain.DailyLog, len(records))
	for i := range records {
		logs[i] = records[i].DayLog(loc)
	}
	return logs, nil
}
