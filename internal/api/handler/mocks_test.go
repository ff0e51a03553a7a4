package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	leaderboardFunc func(ctx context.Context, teamID string, limit int) (*domain.PlayerLeaderboard, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{
		ID:       uuid.New(),
		Username: req.Username,
		TeamID:   req.TeamID,
		Timezone: req.Timezone,
		Level:    1,
		RPGClass: domain.ClassVillager,
	}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) Leaderboard(ctx context.Context, teamID string, limit int) (*domain.PlayerLeaderboard, error) {
	if m.leaderboardFunc != nil {
		return m.leaderboardFunc(ctx, teamID, limit)
	}
	return &domain.PlayerLeaderboard{TeamID: teamID, Rankings: []domain.LeaderboardEntry{}}, nil
}

// MockDailyLogService is a mock implementation of DailyLogService
type MockDailyLogService struct {
	upsertFunc func(ctx context.Context, userID uuid.UUID, date string, req *domain.UpsertDailyLogRequest) (*domain.DailyLogRecord, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.DailyLogFilter) (*domain.DailyLogListResponse, error)
}

func (m *MockDailyLogService) Upsert(ctx context.Context, userID uuid.UUID, date string, req *domain.UpsertDailyLogRequest) (*domain.DailyLogRecord, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, date, req)
	}
	d, _ := domain.ParseDate(date, time.UTC)
	return &domain.DailyLogRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      d,
		Log:       req.ToDailyLog(d),
		UpdatedAt: time.Now(),
	}, nil
}

func (m *MockDailyLogService) List(ctx context.Context, userID uuid.UUID, filter domain.DailyLogFilter) (*domain.DailyLogListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.DailyLogListResponse{
		Data:       []domain.DailyLogResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockScoringService is a mock implementation of ScoringService
type MockScoringService struct {
	recoveryFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.RecoveryResult, error)
	battleFunc   func(ctx context.Context, userID uuid.UUID, date string) (*domain.BattleScore, error)
	weeklyFunc   func(ctx context.Context, userID uuid.UUID, days int) (*domain.WeeklyStats, error)
}

func (m *MockScoringService) Recovery(ctx context.Context, userID uuid.UUID, date string) (*domain.RecoveryResult, error) {
	if m.recoveryFunc != nil {
		return m.recoveryFunc(ctx, userID, date)
	}
	return &domain.RecoveryResult{Score: 85, Status: domain.StatusReadyToTrain, RHRSource: domain.RHRSourceNoData}, nil
}

func (m *MockScoringService) BattleScore(ctx context.Context, userID uuid.UUID, date string) (*domain.BattleScore, error) {
	if m.battleFunc != nil {
		return m.battleFunc(ctx, userID, date)
	}
	return &domain.BattleScore{Total: 1280}, nil
}

func (m *MockScoringService) Weekly(ctx context.Context, userID uuid.UUID, days int) (*domain.WeeklyStats, error) {
	if m.weeklyFunc != nil {
		return m.weeklyFunc(ctx, userID, days)
	}
	return &domain.WeeklyStats{PeriodDays: 7}, nil
}

// MockProgressionService is a mock implementation of ProgressionService
type MockProgressionService struct {
	applyFunc    func(ctx context.Context, userID uuid.UUID, activity *domain.ActivitySnapshot) (*domain.ProgressionResponse, error)
	classifyFunc func(ctx context.Context, userID uuid.UUID, days int) (*domain.ClassificationResult, error)
}

func (m *MockProgressionService) ApplyActivity(ctx context.Context, userID uuid.UUID, activity *domain.ActivitySnapshot) (*domain.ProgressionResponse, error) {
	if m.applyFunc != nil {
		return m.applyFunc(ctx, userID, activity)
	}
	return &domain.ProgressionResponse{
		ProgressionResult:      domain.ProgressionResult{XPGained: 110, NewXPTotal: 10, NewLevel: 2, LeveledUp: true},
		XPRequiredForNextLevel: 282,
		RecoveryScore:          50,
	}, nil
}

func (m *MockProgressionService) Classify(ctx context.Context, userID uuid.UUID, days int) (*domain.ClassificationResult, error) {
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, userID, days)
	}
	return &domain.ClassificationResult{Class: domain.ClassVillager, Category: "Casual"}, nil
}

// MockBattleService is a mock implementation of BattleService
type MockBattleService struct {
	createFunc      func(ctx context.Context, req *domain.CreateBattleRequest) (*domain.Battle, error)
	getByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Battle, error)
	leaderboardFunc func(ctx context.Context, id uuid.UUID) (*domain.BattleLeaderboard, error)
	recomputeFunc   func(ctx context.Context, id uuid.UUID) (*domain.Battle, error)
}

func (m *MockBattleService) Create(ctx context.Context, req *domain.CreateBattleRequest) (*domain.Battle, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	start, _ := domain.ParseDate(req.StartDate, time.UTC)
	end, _ := domain.ParseDate(req.EndDate, time.UTC)
	return &domain.Battle{
		ID:        uuid.New(),
		TeamAID:   req.TeamAID,
		TeamBID:   req.TeamBID,
		StartDate: start,
		EndDate:   end,
		Status:    domain.BattleStatusActive,
	}, nil
}

func (m *MockBattleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Battle, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockBattleService) Leaderboard(ctx context.Context, id uuid.UUID) (*domain.BattleLeaderboard, error) {
	if m.leaderboardFunc != nil {
		return m.leaderboardFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockBattleService) Recompute(ctx context.Context, id uuid.UUID) (*domain.Battle, error) {
	if m.recomputeFunc != nil {
		return m.recomputeFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockCoachService is a mock implementation of CoachService
type MockCoachService struct {
	adviseFunc   func(ctx context.Context, userID uuid.UUID, date, contextKind string) (*domain.CoachAdvice, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.CoachFeedbackRequest) error
}

func (m *MockCoachService) Advise(ctx context.Context, userID uuid.UUID, date, contextKind string) (*domain.CoachAdvice, error) {
	if m.adviseFunc != nil {
		return m.adviseFunc(ctx, userID, date, contextKind)
	}
	return &domain.CoachAdvice{Context: domain.CoachContextRecovery, Date: date, Advice: "Rest well.", Model: "mock"}, nil
}

func (m *MockCoachService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.CoachFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

// newRequest builds a request with chi URL params set.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
