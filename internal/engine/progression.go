package engine

import (
	"fmt"
	"math"

	"github.com/blaisecz/vital-quest/internal/domain"
)

const (
	stepsPerXP    = 100.0
	caloriesPerXP = 50.0

	sleepBonusMinutes = 420
	sleepBonus        = 1.2

	recoveryBonusScore = 70
	recoveryBonus      = 1.15

	// MaxLevelUpsPerApply caps the rollover loop in ApplyXP.
	MaxLevelUpsPerApply = 10000
)

// ComputeXP converts an activity snapshot into XP. A nil RecoveryScore earns
// no recovery bonus.
func ComputeXP(a domain.ActivitySnapshot) float64 {
	xp := float64(a.Steps)/stepsPerXP + a.CaloriesBurned/caloriesPerXP
	if a.SleepTotalMinutes >= sleepBonusMinutes {
		xp *= sleepBonus
	}
	if a.RecoveryScore != nil && *a.RecoveryScore >= recoveryBonusScore {
		xp *= recoveryBonus
	}
	return xp
}

// LevelRequiredXP is the XP needed to leave level: floor(100 * level^1.5).
func LevelRequiredXP(level int) int {
	return int(math.Floor(100 * math.Pow(float64(level), 1.5)))
}

// ApplyXP adds xpGain to progress and rolls over as many levels as the total
// covers. The input snapshot is not modified.
func ApplyXP(progress domain.UserProgress, xpGain float64) (domain.ProgressionResult, error) {
	if progress.Level < 1 || progress.XP < 0 {
		return domain.ProgressionResult{}, fmt.Errorf("%w: progress level=%d xp=%d",
			domain.ErrMalformedInput, progress.Level, progress.XP)
	}
	if math.IsNaN(xpGain) || math.IsInf(xpGain, 0) || xpGain < 0 || xpGain > math.MaxInt32 {
		return domain.ProgressionResult{}, fmt.Errorf("%w: xp gain %v", domain.ErrMalformedInput, xpGain)
	}

	gained := int(math.Floor(xpGain))
	xp := progress.XP + gained
	level := progress.Level

	for i := 0; ; i++ {
		required := LevelRequiredXP(level)
		if xp < required {
			break
		}
		if i == MaxLevelUpsPerApply {
			return domain.ProgressionResult{}, fmt.Errorf("%w: more than %d level-ups from level %d",
				domain.ErrInvariantViolation, MaxLevelUpsPerApply, progress.Level)
		}
		xp -= required
		level++
	}

	return domain.ProgressionResult{
		XPGained:   gained,
		NewXPTotal: xp,
		NewLevel:   level,
		LeveledUp:  level > progress.Level,
	}, nil
}

// MapAttributes adds one snapshot's contribution to the base attributes.
func MapAttributes(base domain.Attributes, a domain.ActivitySnapshot) domain.Attributes {
	return domain.Attributes{
		Strength: base.Strength + a.CaloriesBurned/200,
		Vitality: base.Vitality + a.NutritionScore,
		Stamina:  base.Stamina + float64(a.SleepTotalMinutes)/10,
	}
}
