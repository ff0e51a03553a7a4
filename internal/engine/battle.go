package engine

import "github.com/blaisecz/vital-quest/internal/domain"

const (
	pointsPerStep         = 0.05
	pointsPerDeepSleepMin = 5.0
	pointsPerCalorie      = 0.2
)

// ScoreBattle converts one day of activity into battle points.
func ScoreBattle(log domain.DailyLog) domain.BattleScore {
	deep := DeepSleepMinutes(log.SleepSegments)

	var workoutPoints float64
	for _, w := range log.ManualWorkouts {
		workoutPoints += float64(w.DurationMinutes*w.IntensityRPE) + w.CaloriesBurnt*pointsPerCalorie
	}

	steps := float64(log.TotalSteps) * pointsPerStep
	deepPoints := float64(deep) * pointsPerDeepSleepMin

	return domain.BattleScore{
		Total:            steps + deepPoints + workoutPoints,
		StepsPoints:      steps,
		DeepSleepPoints:  deepPoints,
		WorkoutPoints:    workoutPoints,
		DeepSleepMinutes: deep,
		WorkoutCount:     len(log.ManualWorkouts),
	}
}

// AggregateTeam sums battle totals over logs. The caller decides which logs
// belong to the team and the date range.
func AggregateTeam(logs []domain.DailyLog) float64 {
	var total float64
	for _, l := range logs {
		total += ScoreBattle(l).Total
	}
	return total
}

// ComputeContest aggregates each side independently.
func ComputeContest(teamA, teamB []domain.DailyLog) domain.ContestScore {
	return domain.ContestScore{
		TeamA: AggregateTeam(teamA),
		TeamB: AggregateTeam(teamB),
	}
}
