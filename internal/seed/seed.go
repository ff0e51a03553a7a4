package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/vital-quest/internal/config"
	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/engine"
	"github.com/blaisecz/vital-quest/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	seededDays = 14
	classDays  = 7
)

// BattleID is the fixed ID of the seeded red-vs-blue battle.
var BattleID = uuid.MustParse("77777777-7777-7777-7777-777777777777")

// Users are the seeded players, two per team.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Username: "aria", TeamID: "team-red", Timezone: "Europe/Amsterdam"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Username: "bram", TeamID: "team-red", Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Username: "chika", TeamID: "team-blue", Timezone: "Asia/Tokyo"},
	{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Username: "dylan", TeamID: "team-blue", Timezone: "Australia/Sydney"},
}

// Each seeded player leans towards one kind of training.
var favoriteWorkouts = [][]string{
	{"Gym", "Gym", "Running"},
	{"Running", "Cycling", "Walk"},
	{"Yoga", "Pilates", "Gym"},
	{"Crossfit", "Hiking", "Yoga"},
}

// Run seeds users, two weeks of daily logs and one active battle. Safe to
// call multiple times: progression is only replayed for users created by
// this call.
func Run(ctx context.Context, db *gorm.DB) error {
	if err := config.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	logRepo := repository.NewDailyLogRepository(db)
	today := time.Now()

	for i, user := range Users {
		var existing int64
		if err := db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", user.ID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to look up user %s: %w", user.ID, err)
		}
		created := existing == 0
		if created {
			user.Level = 1
			user.RPGClass = domain.ClassVillager
			if err := db.WithContext(ctx).Create(&user).Error; err != nil {
				return fmt.Errorf("failed to create user %s: %w", user.ID, err)
			}
		}

		// A fixed source per player keeps reseeding reproducible.
		rng := rand.New(rand.NewSource(int64(i + 1)))
		logs, err := seedDailyLogs(ctx, logRepo, user, favoriteWorkouts[i], today, rng)
		if err != nil {
			return err
		}

		if created {
			if err := replayProgression(ctx, db, &user, logs); err != nil {
				return err
			}
		}
	}

	battle := domain.Battle{
		ID:        BattleID,
		TeamAID:   "team-red",
		TeamBID:   "team-blue",
		StartDate: domain.StorageDate(today.AddDate(0, 0, -(seededDays - 1))),
		EndDate:   domain.StorageDate(today.AddDate(0, 0, seededDays)),
		Status:    domain.BattleStatusActive,
	}
	if err := db.WithContext(ctx).Where("id = ?", battle.ID).FirstOrCreate(&battle).Error; err != nil {
		return fmt.Errorf("failed to create battle: %w", err)
	}

	log.Println("[seed] Seed completed")
	return nil
}

// seedDailyLogs writes one log per calendar day in the user's timezone,
// oldest first, and returns them in that order.
func seedDailyLogs(ctx context.Context, repo repository.DailyLogRepository, user domain.User, workouts []string, today time.Time, rng *rand.Rand) ([]domain.DailyLog, error) {
	loc := user.Location()
	localToday := domain.LocalDate(today.In(loc), loc)

	logs := make([]domain.DailyLog, 0, seededDays)
	for i := seededDays - 1; i >= 0; i-- {
		day := localToday.AddDate(0, 0, -i)
		dayLog := sampleLog(day, workouts, rng)

		record := &domain.DailyLogRecord{
			UserID: user.ID,
			Date:   domain.StorageDate(day),
			Log:    dayLog,
		}
		if err := repo.Upsert(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create daily log for %s: %w", user.ID, err)
		}
		logs = append(logs, dayLog)
	}
	return logs, nil
}

// sampleLog builds a plausible day: a night of sleep ending on day, hourly
// heart-rate readings during it, a step count and usually one workout.
func sampleLog(day time.Time, workouts []string, rng *rand.Rand) domain.DailyLog {
	bedtime := day.Add(-time.Duration(60+rng.Intn(90)) * time.Minute)
	stages := []struct {
		stage   domain.SleepStage
		minutes int
	}{
		{domain.SleepStageLight, 30 + rng.Intn(30)},
		{domain.SleepStageDeep, 30 + rng.Intn(70)},
		{domain.SleepStageREM, 40 + rng.Intn(50)},
		{domain.SleepStageLight, 120 + rng.Intn(120)},
	}

	var segments []domain.SleepSegment
	var samples []domain.HeartRateSample
	restingBPM := 52 + rng.Intn(30)
	at := bedtime
	for _, s := range stages {
		end := at.Add(time.Duration(s.minutes) * time.Minute)
		segments = append(segments, domain.SleepSegment{
			StartTime:       at.UTC(),
			EndTime:         end.UTC(),
			Stage:           s.stage,
			DurationMinutes: s.minutes,
		})
		samples = append(samples, domain.HeartRateSample{
			Timestamp: at.Add(time.Duration(s.minutes/2) * time.Minute).UTC(),
			BPM:       restingBPM + rng.Intn(6),
		})
		at = end
	}

	// Daytime readings never count towards resting heart rate.
	samples = append(samples, domain.HeartRateSample{
		Timestamp: day.Add(14 * time.Hour).UTC(),
		BPM:       90 + rng.Intn(40),
	})

	var manual []domain.ManualWorkout
	if rng.Float32() < 0.7 {
		duration := 20 + rng.Intn(70)
		manual = append(manual, domain.ManualWorkout{
			ActivityType:    workouts[rng.Intn(len(workouts))],
			DurationMinutes: duration,
			IntensityRPE:    3 + rng.Intn(8),
			CaloriesBurnt:   float64(duration * (5 + rng.Intn(6))),
		})
	}

	return domain.DailyLog{
		Date:                day,
		TotalSteps:          3000 + rng.Intn(12000),
		TotalActiveCalories: float64(200 + rng.Intn(600)),
		SleepSegments:       segments,
		HeartRateSamples:    samples,
		ManualWorkouts:      manual,
	}
}

// replayProgression applies every seeded day to a fresh user the way the XP
// endpoint would and assigns a class from the last week of workouts.
func replayProgression(ctx context.Context, db *gorm.DB, user *domain.User, logs []domain.DailyLog) error {
	progress := user.Progress()
	attrs := user.Attributes()

	for _, dayLog := range logs {
		recovery := engine.ScoreRecovery(dayLog)
		snapshot := engine.SnapshotFromLog(dayLog, recovery.Score)

		result, err := engine.ApplyXP(progress, engine.ComputeXP(snapshot))
		if err != nil {
			return fmt.Errorf("failed to apply seeded XP for %s: %w", user.ID, err)
		}
		progress = result.Progress()
		attrs = engine.MapAttributes(attrs, snapshot)
	}

	var recent []domain.ManualWorkout
	for _, dayLog := range logs[max(0, len(logs)-classDays):] {
		recent = append(recent, dayLog.ManualWorkouts...)
	}
	class := engine.Classify(recent).Class

	err := db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"xp":        progress.XP,
		"level":     progress.Level,
		"strength":  attrs.Strength,
		"vitality":  attrs.Vitality,
		"stamina":   attrs.Stamina,
		"rpg_class": class,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to store seeded progression for %s: %w", user.ID, err)
	}

	log.Printf("[seed] %s reached level %d as %s", user.Username, progress.Level, class)
	return nil
}
