package engine

import (
	"fmt"

	"github.com/blaisecz/vital-quest/internal/domain"
)

// RecoveryFormula names a recovery scoring variant.
type RecoveryFormula string

const (
	// FormulaBase scores sleep and strain only. RHR is reported, not scored.
	FormulaBase RecoveryFormula = "base"
	// FormulaRHRPenalty is FormulaBase with an extra penalty when the
	// resolved RHR is known and above rhrPenaltyThreshold.
	FormulaRHRPenalty RecoveryFormula = "rhr_penalty"
)

const (
	recoveryBaseScore = 70

	longSleepMinutes = 420
	longSleepBonus   = 15

	// DeepSleepLowMinutes is the deep sleep floor below which a day forces REST_MODE.
	DeepSleepLowMinutes = 45
	deepSleepLowPenalty = 15

	highStrainRPE     = 8
	highStrainPenalty = 10

	rhrPenaltyThreshold = 75.0
	rhrPenalty          = 5

	restModeBelowScore = 50
)

// ParseRecoveryFormula validates a configured formula name.
func ParseRecoveryFormula(s string) (RecoveryFormula, error) {
	switch f := RecoveryFormula(s); f {
	case FormulaBase, FormulaRHRPenalty:
		return f, nil
	case "":
		return FormulaBase, nil
	}
	return "", fmt.Errorf("%w: unknown recovery formula %q", domain.ErrInvalidInput, s)
}

// ScoreRecovery scores a day with the canonical base formula.
func ScoreRecovery(log domain.DailyLog) domain.RecoveryResult {
	return ScoreRecoveryWith(log, FormulaBase)
}

// ScoreRecoveryWith scores a day with an explicitly chosen formula. Names
// other than FormulaRHRPenalty score as FormulaBase.
func ScoreRecoveryWith(log domain.DailyLog, formula RecoveryFormula) domain.RecoveryResult {
	if formula != FormulaRHRPenalty {
		formula = FormulaBase
	}

	deep := DeepSleepMinutes(log.SleepSegments)
	total := TotalSleepMinutes(log.SleepSegments)
	maxRPE := MaxIntensity(log.ManualWorkouts)
	deepLow := deep < DeepSleepLowMinutes
	rhr := ResolveRHR(log)

	score := recoveryBaseScore
	if total > longSleepMinutes {
		score += longSleepBonus
	}
	if deepLow {
		score -= deepSleepLowPenalty
	}
	if maxRPE > highStrainRPE {
		score -= highStrainPenalty
	}
	if formula == FormulaRHRPenalty && rhr.Value != nil && *rhr.Value > rhrPenaltyThreshold {
		score -= rhrPenalty
	}
	score = clampScore(score)

	status := domain.StatusReadyToTrain
	if score < restModeBelowScore || deepLow {
		status = domain.StatusRestMode
	}

	return domain.RecoveryResult{
		Score:               score,
		Status:              status,
		RHR:                 rhr.Value,
		RHRSource:           rhr.Source,
		DeepSleepMinutes:    deep,
		TotalSleepMinutes:   total,
		DeepSleepLow:        deepLow,
		MaxWorkoutIntensity: maxRPE,
		Formula:             string(formula),
	}
}

// DeepSleepMinutes sums DurationMinutes over deep-stage segments.
func DeepSleepMinutes(segments []domain.SleepSegment) int {
	var m int
	for _, s := range segments {
		if s.Stage == domain.SleepStageDeep {
			m += s.DurationMinutes
		}
	}
	return m
}

// TotalSleepMinutes sums DurationMinutes over all segments.
func TotalSleepMinutes(segments []domain.SleepSegment) int {
	var m int
	for _, s := range segments {
		m += s.DurationMinutes
	}
	return m
}

// MaxIntensity is the highest RPE among workouts, or 0 when there are none.
func MaxIntensity(workouts []domain.ManualWorkout) int {
	var m int
	for _, w := range workouts {
		if w.IntensityRPE > m {
			m = w.IntensityRPE
		}
	}
	return m
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
