package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/engine"
	"github.com/google/uuid"
)

func day(date string, hour, minute int) time.Time {
	d, _ := domain.ParseDate(date, time.UTC)
	return d.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// restedLog has 90 minutes of deep sleep out of 450 and a main-sleep RHR of 82.
func restedLog(date string) domain.DailyLog {
	return domain.DailyLog{
		TotalSteps:          10000,
		TotalActiveCalories: 500,
		SleepSegments: []domain.SleepSegment{
			{StartTime: day(date, 0, 0), EndTime: day(date, 1, 30), Stage: domain.SleepStageDeep, DurationMinutes: 90},
			{StartTime: day(date, 1, 30), EndTime: day(date, 7, 30), Stage: domain.SleepStageLight, DurationMinutes: 360},
		},
		HeartRateSamples: []domain.HeartRateSample{
			{Timestamp: day(date, 0, 30), BPM: 78},
			{Timestamp: day(date, 3, 0), BPM: 82},
		},
		ManualWorkouts: []domain.ManualWorkout{
			{ActivityType: "Gym", DurationMinutes: 60, IntensityRPE: 8, CaloriesBurnt: 300},
		},
	}
}

func TestScoringService_Recovery(t *testing.T) {
	users := NewMockUserRepository()
	logs := NewMockDailyLogRepository()
	user := users.addUser("UTC")
	logs.put(user.ID, "2024-01-16", restedLog("2024-01-16"))

	tests := []struct {
		name       string
		formula    engine.RecoveryFormula
		userID     uuid.UUID
		date       string
		wantScore  int
		wantStatus domain.TrainingStatus
		wantErr    error
	}{
		{
			name:       "base formula ignores RHR",
			formula:    engine.FormulaBase,
			userID:     user.ID,
			date:       "2024-01-16",
			wantScore:  85,
			wantStatus: domain.StatusReadyToTrain,
		},
		{
			name:       "rhr penalty formula",
			formula:    engine.FormulaRHRPenalty,
			userID:     user.ID,
			date:       "2024-01-16",
			wantScore:  80,
			wantStatus: domain.StatusReadyToTrain,
		},
		{
			name:    "no log for date",
			formula: engine.FormulaBase,
			userID:  user.ID,
			date:    "2024-01-17",
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "malformed date",
			formula: engine.FormulaBase,
			userID:  user.ID,
			date:    "16-01-2024",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "unknown user",
			formula: engine.FormulaBase,
			userID:  uuid.New(),
			date:    "2024-01-16",
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewScoringService(logs, users, tt.formula)

			res, err := svc.Recovery(context.Background(), tt.userID, tt.date)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Recovery() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if res.Score != tt.wantScore {
				t.Errorf("Recovery() score = %d, want %d", res.Score, tt.wantScore)
			}
			if res.Status != tt.wantStatus {
				t.Errorf("Recovery() status = %s, want %s", res.Status, tt.wantStatus)
			}
			if res.RHRSource != domain.RHRSourceMainSleep {
				t.Errorf("Recovery() rhr source = %s, want %s", res.RHRSource, domain.RHRSourceMainSleep)
			}
			if res.Formula != string(tt.formula) {
				t.Errorf("Recovery() formula = %s, want %s", res.Formula, tt.formula)
			}
		})
	}
}

func TestScoringService_BattleScore(t *testing.T) {
	users := NewMockUserRepository()
	logs := NewMockDailyLogRepository()
	user := users.addUser("UTC")
	logs.put(user.ID, "2024-01-16", restedLog("2024-01-16"))

	svc := NewScoringService(logs, users, engine.FormulaBase)

	res, err := svc.BattleScore(context.Background(), user.ID, "2024-01-16")
	if err != nil {
		t.Fatalf("BattleScore() unexpected error: %v", err)
	}
	// 10000*0.05 + 90*5 + 60*8
	if res.Total != 1430 {
		t.Errorf("BattleScore() total = %v, want 1430", res.Total)
	}
	if res.WorkoutCount != 1 {
		t.Errorf("BattleScore() workout count = %d, want 1", res.WorkoutCount)
	}
}

func TestScoringService_Weekly(t *testing.T) {
	users := NewMockUserRepository()
	logs := NewMockDailyLogRepository()
	user := users.addUser("UTC")

	// Two days inside the window and one just outside it.
	logs.put(user.ID, "2024-01-16", restedLog("2024-01-16"))
	logs.put(user.ID, "2024-01-12", restedLog("2024-01-12"))
	logs.put(user.ID, "2024-01-09", restedLog("2024-01-09"))

	svc := NewScoringService(logs, users, engine.FormulaBase).(*scoringService)
	svc.now = func() time.Time { return day("2024-01-16", 18, 0) }

	stats, err := svc.Weekly(context.Background(), user.ID, 0)
	if err != nil {
		t.Fatalf("Weekly() unexpected error: %v", err)
	}
	if stats.PeriodDays != 2 {
		t.Errorf("Weekly() period days = %d, want 2", stats.PeriodDays)
	}
	if stats.TotalSteps != 20000 {
		t.Errorf("Weekly() total steps = %d, want 20000", stats.TotalSteps)
	}
	if stats.FavoriteActivity != "gym" {
		t.Errorf("Weekly() favorite activity = %q, want gym", stats.FavoriteActivity)
	}

	if _, err := svc.Weekly(context.Background(), user.ID, MaxWindowDays+1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Weekly() with oversized window error = %v, want %v", err, domain.ErrInvalidInput)
	}
}

func TestWindowLogs_UsesUserTimezone(t *testing.T) {
	users := NewMockUserRepository()
	logs := NewMockDailyLogRepository()
	user := users.addUser("Asia/Tokyo")
	logs.put(user.ID, "2024-01-17", restedLog("2024-01-17"))

	// 16:00 UTC on the 16th is already the 17th in Tokyo.
	now := day("2024-01-16", 16, 0)
	stored, err := users.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}

	got, err := windowLogs(context.Background(), logs, stored, 1, now)
	if err != nil {
		t.Fatalf("windowLogs() unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("windowLogs() returned %d logs, want 1", len(got))
	}
	if got[0].Date.Location().String() != "Asia/Tokyo" {
		t.Errorf("windowLogs() date location = %s, want Asia/Tokyo", got[0].Date.Location())
	}
	if got[0].Date.Day() != 17 {
		t.Errorf("windowLogs() date day = %d, want 17", got[0].Date.Day())
	}
}
