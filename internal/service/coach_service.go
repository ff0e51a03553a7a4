package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/engine"
	"github.com/blaisecz/vital-quest/internal/langfuse"
	"github.com/blaisecz/vital-quest/internal/llm"
	"github.com/blaisecz/vital-quest/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CoachService asks the language model for advice grounded in engine results.
type CoachService interface {
	Advise(ctx context.Context, userID uuid.UUID, date, contextKind string) (*domain.CoachAdvice, error)
	// Feedback records a player's rating of earlier advice.
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.CoachFeedbackRequest) error
}

type coachService struct {
	dailyLogRepo repository.DailyLogRepository
	userRepo     repository.UserRepository
	llm          llm.CoachLLM
	traces       langfuse.Client
	formula      engine.RecoveryFormula
}

// NewCoachService creates a new CoachService. A nil client makes every
// request fail with llm.ErrOpenAIUnavailable; a nil traces client skips
// advice tracing.
func NewCoachService(
	dailyLogRepo repository.DailyLogRepository,
	userRepo repository.UserRepository,
	client llm.CoachLLM,
	traces langfuse.Client,
	formula engine.RecoveryFormula,
) CoachService {
	return &coachService{
		dailyLogRepo: dailyLogRepo,
		userRepo:     userRepo,
		llm:          client,
		traces:       traces,
		formula:      formula,
	}
}

func (s *coachService) Advise(ctx context.Context, userID uuid.UUID, date, contextKind string) (*domain.CoachAdvice, error) {
	kind, err := domain.ParseCoachContext(contextKind)
	if err != nil {
		return nil, err
	}
	if s.llm == nil {
		return nil, llm.ErrOpenAIUnavailable
	}

	tracer := otel.Tracer("vital-quest-api/coach")
	ctx, span := tracer.Start(ctx, "CoachService.Advise",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("coach.context", string(kind)),
			attribute.String("log.date", date),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	req := &domain.CoachRequest{Context: kind, Date: date}

	switch kind {
	case domain.CoachContextRecovery:
		day, err := loadDay(ctx, s.dailyLogRepo, user, date)
		if err != nil {
			return nil, err
		}
		recovery := engine.ScoreRecoveryWith(day, s.formula)
		battle := engine.ScoreBattle(day)
		req.Recovery = &recovery
		req.Battle = &battle

	case domain.CoachContextPostWorkout:
		day, err := loadDay(ctx, s.dailyLogRepo, user, date)
		if err != nil {
			return nil, err
		}
		if len(day.ManualWorkouts) == 0 {
			return nil, fmt.Errorf("%w: no workout logged on %s", domain.ErrInvalidInput, date)
		}
		recovery := engine.ScoreRecoveryWith(day, s.formula)
		last := day.ManualWorkouts[len(day.ManualWorkouts)-1]
		req.Recovery = &recovery
		req.Workout = &last

	case domain.CoachContextProgression:
		day, err := parseDay(date, user)
		if err != nil {
			return nil, err
		}
		progress := user.Progress()
		req.Progress = &progress
		req.NextLevel = engine.LevelRequiredXP(progress.Level)
		req.Class = user.RPGClass

		// The weekly window ends on the requested date.
		logs, err := windowLogs(ctx, s.dailyLogRepo, user, DefaultWindowDays, day)
		if err != nil {
			return nil, err
		}
		weekly := engine.WeeklyStats(logs)
		req.Weekly = &weekly
	}

	advice, err := s.llm.GenerateAdvice(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if !errors.Is(err, llm.ErrOpenAIUnavailable) {
			log.Printf("[coach] advice for user %s failed: %v", userID, err)
		}
		return nil, err
	}

	result := &domain.CoachAdvice{
		Context: kind,
		Date:    date,
		Advice:  advice,
		Model:   s.llm.Model(),
	}

	if s.traces != nil {
		// Reuse the OTel trace ID so feedback lines up with the request span.
		var traceID string
		if sc := span.SpanContext(); sc.IsValid() {
			traceID = sc.TraceID().String()
		}
		id, err := s.traces.TraceAdvice(ctx, langfuse.AdviceTrace{
			TraceID: traceID,
			UserID:  userID.String(),
			Model:   result.Model,
			Request: req,
			Advice:  advice,
		})
		if err != nil {
			log.Printf("[coach] advice trace for user %s not recorded: %v", userID, err)
		}
		result.TraceID = id
	}

	return result, nil
}

func (s *coachService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.CoachFeedbackRequest) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	if s.traces == nil {
		return nil
	}

	// Ratings are best effort; a lost score never fails the player's request.
	if err := s.traces.ScoreAdvice(ctx, req.TraceID, req.Rating, req.Comment); err != nil {
		log.Printf("[coach] rating for trace %s not recorded: %v", req.TraceID, err)
	}
	return nil
}
