package engine

import (
	"testing"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestValidateDailyLog(t *testing.T) {
	valid := func() domain.DailyLog {
		return domain.DailyLog{
			Date:             testDay,
			TotalSteps:       100,
			SleepSegments:    []domain.SleepSegment{segment(domain.SleepStageDeep, at(0, 0), at(1, 0))},
			HeartRateSamples: []domain.HeartRateSample{sample(at(0, 30), 55)},
			ManualWorkouts:   []domain.ManualWorkout{workout("run", 30, 5, 100)},
		}
	}

	require.NoError(t, ValidateDailyLog(valid()))
	require.NoError(t, ValidateDailyLog(domain.DailyLog{Date: testDay}))

	tests := []struct {
		name   string
		mutate func(*domain.DailyLog)
	}{
		{"negative steps", func(l *domain.DailyLog) { l.TotalSteps = -1 }},
		{"negative calories", func(l *domain.DailyLog) { l.TotalActiveCalories = -0.5 }},
		{"negative segment duration", func(l *domain.DailyLog) { l.SleepSegments[0].DurationMinutes = -10 }},
		{"inverted segment", func(l *domain.DailyLog) { l.SleepSegments[0].StartTime = at(2, 0) }},
		{"unknown stage", func(l *domain.DailyLog) { l.SleepSegments[0].Stage = "awake" }},
		{"negative bpm", func(l *domain.DailyLog) { l.HeartRateSamples[0].BPM = -1 }},
		{"negative workout duration", func(l *domain.DailyLog) { l.ManualWorkouts[0].DurationMinutes = -1 }},
		{"rpe zero", func(l *domain.DailyLog) { l.ManualWorkouts[0].IntensityRPE = 0 }},
		{"rpe eleven", func(l *domain.DailyLog) { l.ManualWorkouts[0].IntensityRPE = 11 }},
		{"negative workout calories", func(l *domain.DailyLog) { l.ManualWorkouts[0].CaloriesBurnt = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.mutate(&l)
			require.ErrorIs(t, ValidateDailyLog(l), domain.ErrMalformedInput)
		})
	}
}

func TestSnapshotFromLog(t *testing.T) {
	log := domain.DailyLog{
		Date:                testDay,
		TotalSteps:          8000,
		TotalActiveCalories: 420,
		SleepSegments:       []domain.SleepSegment{minutes(domain.SleepStageDeep, 80), minutes(domain.SleepStageREM, 100)},
	}

	got := SnapshotFromLog(log, 72)

	require.Equal(t, "2024-01-16", got.Date)
	require.Equal(t, 8000, got.Steps)
	require.InDelta(t, 420.0, got.CaloriesBurned, 1e-9)
	require.Equal(t, 180, got.SleepTotalMinutes)
	require.NotNil(t, got.RecoveryScore)
	require.Equal(t, 72, *got.RecoveryScore)
}
