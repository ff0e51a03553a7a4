package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/repository"
	"github.com/google/uuid"
)

// Leaderboard sizes used when the caller does not ask for one.
const (
	DefaultGlobalLeaderboardLimit = 10
	DefaultTeamLeaderboardLimit   = 50
	MaxLeaderboardLimit           = 100
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// Leaderboard ranks all players, or the members of teamID when it is set.
	// A limit of 0 selects the default size.
	Leaderboard(ctx context.Context, teamID string, limit int) (*domain.PlayerLeaderboard, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create registers a new player at level 1 as a Villager. Team IDs are
// lower-cased so battles match members regardless of how the team was typed.
func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username must not be blank", domain.ErrInvalidInput)
	}
	loc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", domain.ErrInvalidInput, req.Timezone)
	}

	user := &domain.User{
		ID:       uuid.New(),
		Username: username,
		TeamID:   normalizeTeamID(req.TeamID),
		Timezone: loc.String(),
		Level:    1,
		RPGClass: domain.ClassVillager,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) Leaderboard(ctx context.Context, teamID string, limit int) (*domain.PlayerLeaderboard, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
	}
	teamID = normalizeTeamID(teamID)
	if limit == 0 {
		limit = DefaultGlobalLeaderboardLimit
		if teamID != "" {
			limit = DefaultTeamLeaderboardLimit
		}
	}
	limit = min(limit, MaxLeaderboardLimit)

	users, err := s.repo.ListLeaderboard(ctx, teamID, limit)
	if err != nil {
		return nil, err
	}
	return domain.NewPlayerLeaderboard(teamID, users), nil
}

// normalizeTeamID folds a team ID to the stored form.
func normalizeTeamID(teamID string) string {
	return strings.ToLower(strings.TrimSpace(teamID))
}
