package engine

import (
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
)

var testDay = time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return testDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func segment(stage domain.SleepStage, start, end time.Time) domain.SleepSegment {
	return domain.SleepSegment{
		StartTime:       start,
		EndTime:         end,
		Stage:           stage,
		DurationMinutes: int(end.Sub(start).Minutes()),
	}
}

func minutes(stage domain.SleepStage, m int) domain.SleepSegment {
	start := at(0, 0)
	return domain.SleepSegment{
		StartTime:       start,
		EndTime:         start.Add(time.Duration(m) * time.Minute),
		Stage:           stage,
		DurationMinutes: m,
	}
}

func sample(ts time.Time, bpm int) domain.HeartRateSample {
	return domain.HeartRateSample{Timestamp: ts, BPM: bpm}
}

func workout(activity string, duration, rpe int, calories float64) domain.ManualWorkout {
	return domain.ManualWorkout{
		ActivityType:    activity,
		DurationMinutes: duration,
		IntensityRPE:    rpe,
		CaloriesBurnt:   calories,
	}
}

func intPtr(v int) *int {
	return &v
}
