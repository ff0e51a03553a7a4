package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/engine"
	"github.com/blaisecz/vital-quest/internal/repository"
	"github.com/blaisecz/vital-quest/pkg/pagination"
	"github.com/google/uuid"
)

type DailyLogService interface {
	Upsert(ctx context.Context, userID uuid.UUID, date string, req *domain.UpsertDailyLogRequest) (*domain.DailyLogRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.DailyLogFilter) (*domain.DailyLogListResponse, error)
}

type dailyLogService struct {
	repo     repository.DailyLogRepository
	userRepo repository.UserRepository
}

func NewDailyLogService(repo repository.DailyLogRepository, userRepo repository.UserRepository) DailyLogService {
	return &dailyLogService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Upsert stores one calendar day of activity, replacing any earlier log of
// the same day. The date is read in the user's timezone.
func (s *dailyLogService) Upsert(ctx context.Context, userID uuid.UUID, date string, req *domain.UpsertDailyLogRequest) (*domain.DailyLogRecord, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	day, err := parseDay(date, user)
	if err != nil {
		return nil, err
	}

	log := req.ToDailyLog(day)
	if err := engine.ValidateDailyLog(log); err != nil {
		return nil, err
	}

	record := &domain.DailyLogRecord{
		UserID: userID,
		Date:   domain.StorageDate(day),
		Log:    log,
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *dailyLogService) List(ctx context.Context, userID uuid.UUID, filter domain.DailyLogFilter) (*domain.DailyLogListResponse, error) {
	// Check if user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	records, hasMore := pagination.Trim(records, filter.Limit)

	response := &domain.DailyLogListResponse{
		Data: make([]domain.DailyLogResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, rec := range records {
		response.Data[i] = rec.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		response.Pagination.NextCursor = pagination.NewCursor(last.Date, last.ID).Encode()
	}

	return response, nil
}

// parseDay reads a YYYY-MM-DD path value as local midnight in the user's timezone.
func parseDay(date string, user *domain.User) (time.Time, error) {
	day, err := domain.ParseDate(date, user.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrInvalidInput, date)
	}
	return day, nil
}

// loadDay fetches the stored log of one calendar day, ready for scoring.
func loadDay(ctx context.Context, repo repository.DailyLogRepository, user *domain.User, date string) (domain.DailyLog, error) {
	day, err := parseDay(date, user)
	if err != nil {
		return domain.DailyLog{}, err
	}
	record, err := repo.GetByDate(ctx, user.ID, domain.StorageDate(day))
	if err != nil {
		return domain.DailyLog{}, err
	}
	return record.DayLog(user.Location()), nil
}
