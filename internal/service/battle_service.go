package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ContestRecomputer recomputes and persists the scores of one battle.
type ContestRecomputer interface {
	Recompute(ctx context.Context, b domain.Battle) (domain.ContestScore, error)
}

type BattleService interface {
	Create(ctx context.Context, req *domain.CreateBattleRequest) (*domain.Battle, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Battle, error)
	// Leaderboard ranks the battle's teams by their last aggregated score.
	Leaderboard(ctx context.Context, id uuid.UUID) (*domain.BattleLeaderboard, error)
	// Recompute refreshes the battle's scores immediately instead of waiting
	// for the next aggregation pass.
	Recompute(ctx context.Context, id uuid.UUID) (*domain.Battle, error)
}

type battleService struct {
	repo       repository.BattleRepository
	recomputer ContestRecomputer
}

func NewBattleService(repo repository.BattleRepository, recomputer ContestRecomputer) BattleService {
	return &battleService{
		repo:       repo,
		recomputer: recomputer,
	}
}

func (s *battleService) Create(ctx context.Context, req *domain.CreateBattleRequest) (*domain.Battle, error) {
	if req.TeamAID == req.TeamBID {
		return nil, domain.ErrDuplicateTeams
	}

	start, err := domain.ParseDate(req.StartDate, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	end, err := domain.ParseDate(req.EndDate, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date is before start_date", domain.ErrInvalidInput)
	}

	battle := &domain.Battle{
		ID:        uuid.New(),
		TeamAID:   req.TeamAID,
		TeamBID:   req.TeamBID,
		StartDate: start,
		EndDate:   end,
		Status:    domain.BattleStatusActive,
	}
	if err := s.repo.Create(ctx, battle); err != nil {
		return nil, err
	}

	return battle, nil
}

func (s *battleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Battle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *battleService) Leaderboard(ctx context.Context, id uuid.UUID) (*domain.BattleLeaderboard, error) {
	battle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	standings := []domain.TeamStanding{
		{TeamID: battle.TeamAID, Score: battle.TeamAScore},
		{TeamID: battle.TeamBID, Score: battle.TeamBScore},
	}
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Score != standings[j].Score {
			return standings[i].Score > standings[j].Score
		}
		return standings[i].TeamID < standings[j].TeamID
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	return &domain.BattleLeaderboard{
		BattleID:    battle.ID,
		Status:      battle.Status,
		Standings:   standings,
		LastUpdated: battle.LastUpdated,
	}, nil
}

func (s *battleService) Recompute(ctx context.Context, id uuid.UUID) (*domain.Battle, error) {
	tracer := otel.Tracer("vital-quest-api/battle")
	ctx, span := tracer.Start(ctx, "BattleService.Recompute",
		trace.WithAttributes(attribute.String("battle.id", id.String())),
	)
	defer span.End()

	battle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	score, err := s.recomputer.Recompute(ctx, *battle)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Float64("battle.team_a_score", score.TeamA),
		attribute.Float64("battle.team_b_score", score.TeamB),
	)

	return s.repo.GetByID(ctx, id)
}
