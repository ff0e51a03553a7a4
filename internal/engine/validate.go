package engine

import (
	"fmt"

	"github.com/blaisecz/vital-quest/internal/domain"
)

// ValidateDailyLog reports the first value that the ingestion boundary must
// reject. Scoring functions assume logs that pass this check and never clamp.
func ValidateDailyLog(log domain.DailyLog) error {
	if log.TotalSteps < 0 {
		return fmt.Errorf("%w: total_steps %d is negative", domain.ErrMalformedInput, log.TotalSteps)
	}
	if log.TotalActiveCalories < 0 {
		return fmt.Errorf("%w: total_active_calories %v is negative", domain.ErrMalformedInput, log.TotalActiveCalories)
	}
	for i, s := range log.SleepSegments {
		if s.DurationMinutes < 0 {
			return fmt.Errorf("%w: sleep_segments[%d] duration %d is negative", domain.ErrMalformedInput, i, s.DurationMinutes)
		}
		if s.StartTime.After(s.EndTime) {
			return fmt.Errorf("%w: sleep_segments[%d] starts after it ends", domain.ErrMalformedInput, i)
		}
		switch s.Stage {
		case domain.SleepStageDeep, domain.SleepStageLight, domain.SleepStageREM:
		default:
			return fmt.Errorf("%w: sleep_segments[%d] unknown stage %q", domain.ErrMalformedInput, i, s.Stage)
		}
	}
	for i, h := range log.HeartRateSamples {
		if h.BPM < 0 {
			return fmt.Errorf("%w: heart_rate_samples[%d] bpm %d is negative", domain.ErrMalformedInput, i, h.BPM)
		}
	}
	for i, w := range log.ManualWorkouts {
		if w.DurationMinutes < 0 {
			return fmt.Errorf("%w: manual_workouts[%d] duration %d is negative", domain.ErrMalformedInput, i, w.DurationMinutes)
		}
		if w.IntensityRPE < 1 || w.IntensityRPE > 10 {
			return fmt.Errorf("%w: manual_workouts[%d] intensity_rpe %d outside 1-10", domain.ErrMalformedInput, i, w.IntensityRPE)
		}
		if w.CaloriesBurnt < 0 {
			return fmt.Errorf("%w: manual_workouts[%d] calories_burnt %v is negative", domain.ErrMalformedInput, i, w.CaloriesBurnt)
		}
	}
	return nil
}

// SnapshotFromLog builds the XP input for a stored day.
func SnapshotFromLog(log domain.DailyLog, recoveryScore int) domain.ActivitySnapshot {
	return domain.ActivitySnapshot{
		Date:              log.Date.Format(domain.DateLayout),
		Steps:             log.TotalSteps,
		CaloriesBurned:    log.TotalActiveCalories,
		SleepTotalMinutes: TotalSleepMinutes(log.SleepSegments),
		RecoveryScore:     &recoveryScore,
	}
}
