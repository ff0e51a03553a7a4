package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/engine"
	"github.com/blaisecz/vital-quest/internal/events"
	"github.com/blaisecz/vital-quest/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultRecoveryScore is assumed for XP when neither the request nor a
// stored log supplies one.
const DefaultRecoveryScore = 50

// levelUpPublishTimeout bounds how long a level-up event may hold up the
// XP response when the broker is slow or down.
const levelUpPublishTimeout = 2 * time.Second

// ProgressionService applies XP and infers RPG classes.
type ProgressionService interface {
	// ApplyActivity converts an activity snapshot into XP and attributes and
	// persists the user's new progress.
	ApplyActivity(ctx context.Context, userID uuid.UUID, activity *domain.ActivitySnapshot) (*domain.ProgressionResponse, error)
	// Classify infers the user's class from the last days of workouts and persists it.
	Classify(ctx context.Context, userID uuid.UUID, days int) (*domain.ClassificationResult, error)
}

type progressionService struct {
	dailyLogRepo repository.DailyLogRepository
	userRepo     repository.UserRepository
	publisher    events.Publisher
	formula      engine.RecoveryFormula
	now          func() time.Time

	publishTimeout time.Duration
}

// NewProgressionService creates a new ProgressionService.
func NewProgressionService(
	dailyLogRepo repository.DailyLogRepository,
	userRepo repository.UserRepository,
	publisher events.Publisher,
	formula engine.RecoveryFormula,
) ProgressionService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &progressionService{
		dailyLogRepo: dailyLogRepo,
		userRepo:     userRepo,
		publisher:    publisher,
		formula:      formula,
		now:          time.Now,

		publishTimeout: levelUpPublishTimeout,
	}
}

func (s *progressionService) ApplyActivity(ctx context.Context, userID uuid.UUID, activity *domain.ActivitySnapshot) (*domain.ProgressionResponse, error) {
	tracer := otel.Tracer("vital-quest-api/progression")
	ctx, span := tracer.Start(ctx, "ProgressionService.ApplyActivity",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := *activity
	recovery, err := s.recoveryFor(ctx, user, &snapshot)
	if err != nil {
		return nil, err
	}
	snapshot.RecoveryScore = &recovery

	xp := engine.ComputeXP(snapshot)

	// XP applies to the locked row, not to the copy loaded above.
	var (
		result        domain.ProgressionResult
		attrs         domain.Attributes
		previousLevel int
	)
	err = s.userRepo.UpdateProgression(ctx, userID, func(current *domain.User) (domain.UserProgress, domain.Attributes, error) {
		applied, err := engine.ApplyXP(current.Progress(), xp)
		if err != nil {
			return domain.UserProgress{}, domain.Attributes{}, err
		}
		result, previousLevel = applied, current.Level
		attrs = engine.MapAttributes(current.Attributes(), snapshot)
		return applied.Progress(), attrs, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	xpAwarded.Add(float64(result.XPGained))
	span.SetAttributes(
		attribute.Int("xp.gained", result.XPGained),
		attribute.Int("level.new", result.NewLevel),
		attribute.Bool("level.up", result.LeveledUp),
	)

	if result.LeveledUp {
		levelUps.Add(float64(result.NewLevel - previousLevel))
		s.publishLevelUp(ctx, events.LevelUpEvent{
			UserID:        userID,
			PreviousLevel: previousLevel,
			NewLevel:      result.NewLevel,
			XPTotal:       result.NewXPTotal,
			OccurredAt:    s.now().UTC(),
		})
	}

	return &domain.ProgressionResponse{
		ProgressionResult:      result,
		XPRequiredForNextLevel: engine.LevelRequiredXP(result.NewLevel),
		RecoveryScore:          recovery,
		Attributes:             attrs,
	}, nil
}

// publishLevelUp announces a level-up. Delivery failures are logged only;
// the progress is already stored.
func (s *progressionService) publishLevelUp(ctx context.Context, evt events.LevelUpEvent) {
	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, events.TopicLevelUp, evt.UserID.String(), evt); err != nil {
		log.Printf("[progression] level-up event for user %s not published: %v", evt.UserID, err)
	}
}

// recoveryFor returns the request's recovery score, else the score of the
// stored log for the snapshot date, else DefaultRecoveryScore.
func (s *progressionService) recoveryFor(ctx context.Context, user *domain.User, snapshot *domain.ActivitySnapshot) (int, error) {
	if snapshot.RecoveryScore != nil {
		return *snapshot.RecoveryScore, nil
	}
	if snapshot.Date == "" {
		return DefaultRecoveryScore, nil
	}

	day, err := loadDay(ctx, s.dailyLogRepo, user, snapshot.Date)
	if errors.Is(err, domain.ErrNotFound) {
		return DefaultRecoveryScore, nil
	}
	if err != nil {
		return 0, err
	}
	return engine.ScoreRecoveryWith(day, s.formula).Score, nil
}

func (s *progressionService) Classify(ctx context.Context, userID uuid.UUID, days int) (*domain.ClassificationResult, error) {
	tracer := otel.Tracer("vital-quest-api/progression")
	ctx, span := tracer.Start(ctx, "ProgressionService.Classify",
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

	var workouts []domain.ManualWorkout
	for _, l := range logs {
		workouts = append(workouts, l.ManualWorkouts...)
	}

	result := engine.Classify(workouts)
	if result.Class != user.RPGClass {
		if err := s.userRepo.UpdateClass(ctx, userID, result.Class); err != nil {
			return nil, err
		}
	}
	classAssignments.WithLabelValues(string(result.Class)).Inc()
	span.SetAttributes(
		attribute.String("rpg.class", string(result.Class)),
		attribute.Int("workouts.count", result.WorkoutCount),
	)

	return &result, nil
}
