package engine

import (
	"math"

	"github.com/blaisecz/vital-quest/internal/domain"
)

// NoFavoriteActivity is reported when a window has no workouts.
const NoFavoriteActivity = "none"

// WeeklyStats summarises a window of daily logs. Averages are per log, and
// recovery uses the base formula. An empty window yields the zero value.
func WeeklyStats(logs []domain.DailyLog) domain.WeeklyStats {
	if len(logs) == 0 {
		return domain.WeeklyStats{}
	}

	var (
		steps, sleepMin, deepMin, recovery int
		calories                           float64
		workouts                           []domain.ManualWorkout
	)
	for _, l := range logs {
		steps += l.TotalSteps
		calories += l.TotalActiveCalories
		sleepMin += TotalSleepMinutes(l.SleepSegments)
		deepMin += DeepSleepMinutes(l.SleepSegments)
		recovery += ScoreRecovery(l).Score
		workouts = append(workouts, l.ManualWorkouts...)
	}

	n := len(logs)
	favorite := NoFavoriteActivity
	if len(workouts) > 0 {
		favorite, _ = DominantActivity(workouts)
	}

	return domain.WeeklyStats{
		PeriodDays:       n,
		TotalSteps:       steps,
		AvgSteps:         steps / n,
		TotalCalories:    int(calories),
		AvgCalories:      int(calories / float64(n)),
		TotalSleepHours:  round1(float64(sleepMin) / 60),
		AvgSleepHours:    round1(float64(sleepMin) / 60 / float64(n)),
		DeepSleepMinutes: deepMin,
		TotalWorkouts:    len(workouts),
		FavoriteActivity: favorite,
		AvgRecoveryScore: round1(float64(recovery) / float64(n)),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
