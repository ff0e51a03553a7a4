package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/langfuse"
	"github.com/blaisecz/vital-quest/internal/repository"
	"github.com/google/uuid"
)

// MockDailyLogRepository is a mock implementation of DailyLogRepository
type MockDailyLogRepository struct {
	records map[string]*domain.DailyLogRecord
	err     error
}

func NewMockDailyLogRepository() *MockDailyLogRepository {
	return &MockDailyLogRepository{
		records: make(map[string]*domain.DailyLogRecord),
	}
}

func recordKey(userID uuid.UUID, date time.Time) string {
	return userID.String() + ":" + date.Format(domain.DateLayout)
}

func (m *MockDailyLogRepository) Upsert(ctx context.Context, record *domain.DailyLogRecord) error {
	if m.err != nil {
		return m.err
	}
	key := recordKey(record.UserID, record.Date)
	if existing, ok := m.records[key]; ok {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	} else {
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		record.CreatedAt = time.Now()
	}
	record.UpdatedAt = time.Now()
	stored := *record
	m.records[key] = &stored
	return nil
}

func (m *MockDailyLogRepository) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLogRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[recordKey(userID, date)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (m *MockDailyLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DailyLogFilter) ([]domain.DailyLogRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailyLogRecord
	for _, rec := range m.records {
		if rec.UserID == userID {
			result = append(result, *rec)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (m *MockDailyLogRepository) ListByUserRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyLogRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailyLogRecord
	for _, rec := range m.records {
		if rec.UserID == userID && !rec.Date.Before(from) && !rec.Date.After(to) {
			result = append(result, *rec)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *MockDailyLogRepository) ListByTeamRange(ctx context.Context, teamID string, from, to time.Time) ([]domain.DailyLog, error) {
	return nil, m.err
}

// put stores a log for the given UTC calendar date.
func (m *MockDailyLogRepository) put(userID uuid.UUID, date string, log domain.DailyLog) {
	day, _ := domain.ParseDate(date, time.UTC)
	log.Date = day
	m.records[recordKey(userID, day)] = &domain.DailyLogRecord{
		ID:     uuid.New(),
		UserID: userID,
		Date:   day,
		Log:    log,
	}
}

func (m *MockDailyLogRepository) SetError(err error) {
	m.err = err
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
	err   error

	// readBarrier, when set, holds every GetByID until all callers have read.
	readBarrier *sync.WaitGroup
	// leaderboardLimit is the limit of the last ListLeaderboard call.
	leaderboardLimit int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	var u domain.User
	user, ok := m.users[id]
	if ok {
		u = *user
	}
	err := m.err
	m.mu.Unlock()

	if m.readBarrier != nil {
		m.readBarrier.Done()
		m.readBarrier.Wait()
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) UpdateProgression(ctx context.Context, id uuid.UUID, apply repository.ProgressionFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	current := *user
	progress, attrs, err := apply(&current)
	if err != nil {
		return err
	}
	user.XP, user.Level = progress.XP, progress.Level
	user.Strength, user.Vitality, user.Stamina = attrs.Strength, attrs.Vitality, attrs.Stamina
	return nil
}

func (m *MockUserRepository) UpdateClass(ctx context.Context, id uuid.UUID, class domain.RPGClass) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.RPGClass = class
	return nil
}

func (m *MockUserRepository) ListLeaderboard(ctx context.Context, teamID string, limit int) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboardLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.User
	for _, u := range m.users {
		if teamID == "" || u.TeamID == teamID {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		if a.XP != b.XP {
			return a.XP > b.XP
		}
		return a.ID.String() < b.ID.String()
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// addUser registers a fresh level-1 user in the given timezone.
func (m *MockUserRepository) addUser(timezone string) *domain.User {
	user := &domain.User{
		ID:       uuid.New(),
		Username: "player",
		TeamID:   "team-red",
		Timezone: timezone,
		Level:    1,
		RPGClass: domain.ClassVillager,
	}
	m.users[user.ID] = user
	return user
}

// MockBattleRepository is a mock implementation of BattleRepository
type MockBattleRepository struct {
	battles map[uuid.UUID]*domain.Battle
	err     error
}

func NewMockBattleRepository() *MockBattleRepository {
	return &MockBattleRepository{
		battles: make(map[uuid.UUID]*domain.Battle),
	}
}

func (m *MockBattleRepository) Create(ctx context.Context, battle *domain.Battle) error {
	if m.err != nil {
		return m.err
	}
	if battle.ID == uuid.Nil {
		battle.ID = uuid.New()
	}
	b := *battle
	m.battles[battle.ID] = &b
	return nil
}

func (m *MockBattleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Battle, error) {
	if m.err != nil {
		return nil, m.err
	}
	b, ok := m.battles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *b
	return &out, nil
}

func (m *MockBattleRepository) ListActive(ctx context.Context) ([]domain.Battle, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Battle
	for _, b := range m.battles {
		if b.Status == domain.BattleStatusActive {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *MockBattleRepository) UpdateScores(ctx context.Context, id uuid.UUID, teamA, teamB float64, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	b, ok := m.battles[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.TeamAScore, b.TeamBScore = teamA, teamB
	b.LastUpdated = &at
	return nil
}

// MockRecomputer writes fixed scores through to a MockBattleRepository.
type MockRecomputer struct {
	repo  *MockBattleRepository
	score domain.ContestScore
	err   error
	calls int
}

func (m *MockRecomputer) Recompute(ctx context.Context, b domain.Battle) (domain.ContestScore, error) {
	m.calls++
	if m.err != nil {
		return domain.ContestScore{}, m.err
	}
	if err := m.repo.UpdateScores(ctx, b.ID, m.score.TeamA, m.score.TeamB, time.Now().UTC()); err != nil {
		return domain.ContestScore{}, err
	}
	return m.score, nil
}

type publishedEvent struct {
	topic   string
	key     string
	payload any
}

// MockPublisher records published events.
type MockPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (m *MockPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, publishedEvent{topic: topic, key: key, payload: payload})
	return nil
}

// MockCoachLLM returns canned advice and keeps the last request.
type MockCoachLLM struct {
	advice  string
	err     error
	lastReq *domain.CoachRequest
}

func (m *MockCoachLLM) GenerateAdvice(ctx context.Context, req *domain.CoachRequest) (string, error) {
	m.lastReq = req
	if m.err != nil {
		return "", m.err
	}
	return m.advice, nil
}

func (m *MockCoachLLM) Model() string {
	return "mock-model"
}

// MockTraces records advice traces and ratings.
type MockTraces struct {
	advice   []langfuse.AdviceTrace
	scores   []int
	scoreErr error
}

func (m *MockTraces) Enabled() bool { return true }

func (m *MockTraces) TraceAdvice(ctx context.Context, in langfuse.AdviceTrace) (string, error) {
	m.advice = append(m.advice, in)
	if in.TraceID != "" {
		return in.TraceID, nil
	}
	return uuid.New().String(), nil
}

func (m *MockTraces) ScoreAdvice(ctx context.Context, traceID string, rating int, comment string) error {
	m.scores = append(m.scores, rating)
	return m.scoreErr
}
