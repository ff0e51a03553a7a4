package domain

// RHRSource identifies which rung of the resting-heart-rate fallback ladder
// produced a value.
// @Description Source of the resting heart rate estimate.
type RHRSource string

const (
	RHRSourceMainSleep      RHRSource = "main_sleep"
	RHRSourceFallbackWindow RHRSource = "fallback_window"
	RHRSourceNoData         RHRSource = "no_data"
)

// RHRResult is a resting heart rate estimate. Value is nil when unknown.
type RHRResult struct {
	Value  *float64  `json:"value"`
	Source RHRSource `json:"source" example:"main_sleep"`
}

// TrainingStatus is the binary readiness verdict.
type TrainingStatus string

const (
	StatusReadyToTrain TrainingStatus = "READY_TO_TRAIN"
	StatusRestMode     TrainingStatus = "REST_MODE"
)

// RecoveryResult is the readiness score for one day.
// @Description Recovery score (0-100) and training status.
type RecoveryResult struct {
	// Readiness score, 0-100
	Score int `json:"score" example:"85"`
	// READY_TO_TRAIN or REST_MODE
	Status TrainingStatus `json:"status" example:"READY_TO_TRAIN"`
	// Resting heart rate in bpm, null when unknown
	RHR *float64 `json:"rhr"`
	// Which data produced the RHR estimate
	RHRSource RHRSource `json:"rhr_source" example:"main_sleep"`
	// Minutes of deep sleep
	DeepSleepMinutes int `json:"deep_sleep_minutes" example:"80"`
	// Minutes of sleep across all stages
	TotalSleepMinutes int `json:"total_sleep_minutes" example:"450"`
	// Deep sleep under 45 minutes
	DeepSleepLow bool `json:"deep_sleep_low" example:"false"`
	// Highest workout RPE of the day (0 when none)
	MaxWorkoutIntensity int `json:"max_workout_intensity" example:"7"`
	// Scoring formula that produced this result
	Formula string `json:"formula" example:"base"`
}

// BattleScore is one day's competitive point value.
// @Description Battle points with per-source breakdown.
type BattleScore struct {
	Total            float64 `json:"total" example:"1280"`
	StepsPoints      float64 `json:"steps_points" example:"500"`
	DeepSleepPoints  float64 `json:"deep_sleep_points" example:"300"`
	WorkoutPoints    float64 `json:"workout_points" example:"480"`
	DeepSleepMinutes int     `json:"deep_sleep_minutes" example:"60"`
	WorkoutCount     int     `json:"workout_count" example:"1"`
}

// ContestScore holds both team totals of a team-vs-team contest.
type ContestScore struct {
	TeamA float64 `json:"team_a"`
	TeamB float64 `json:"team_b"`
}

// ActivitySnapshot is the input to XP computation.
// @Description Activity figures that earn XP.
type ActivitySnapshot struct {
	Date              string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-16"`
	Steps             int     `json:"steps" validate:"min=0" example:"10000"`
	CaloriesBurned    float64 `json:"calories_burned" validate:"min=0" example:"500"`
	SleepTotalMinutes int     `json:"sleep_total_minutes" validate:"min=0" example:"450"`
	RecoveryScore     *int    `json:"recovery_score,omitempty" validate:"omitempty,min=0,max=100" example:"75"`
	NutritionScore    float64 `json:"nutrition_score,omitempty" validate:"min=0" example:"0"`
}

// UserProgress is the level/XP state owned by the persistence layer.
type UserProgress struct {
	XP    int `json:"xp"`
	Level int `json:"level"`
}

// ProgressionResult is the outcome of applying XP to a UserProgress.
// @Description XP application result.
type ProgressionResult struct {
	XPGained   int  `json:"xp_gained" example:"27"`
	NewXPTotal int  `json:"new_xp_total" example:"64"`
	NewLevel   int  `json:"new_level" example:"3"`
	LeveledUp  bool `json:"leveled_up" example:"true"`
}

// Progress returns the snapshot to persist.
func (r ProgressionResult) Progress() UserProgress {
	return UserProgress{XP: r.NewXPTotal, Level: r.NewLevel}
}

// ProgressionResponse is returned by the XP endpoint.
// @Description XP application result and the next threshold.
type ProgressionResponse struct {
	ProgressionResult
	XPRequiredForNextLevel int        `json:"xp_required_for_next_level" example:"519"`
	RecoveryScore          int        `json:"recovery_score" example:"75"`
	Attributes             Attributes `json:"attributes"`
}

// Attributes are the cumulative RPG stats of a user.
type Attributes struct {
	Strength float64 `json:"strength"`
	Vitality float64 `json:"vitality"`
	Stamina  float64 `json:"stamina"`
}

// RPGClass is the character archetype inferred from workout history.
type RPGClass string

const (
	ClassWarrior    RPGClass = "Warrior"
	ClassRanger     RPGClass = "Ranger"
	ClassMonk       RPGClass = "Monk"
	ClassVillager   RPGClass = "Villager"
	ClassAdventurer RPGClass = "Adventurer"
)

// ClassificationResult is the outcome of classifying a workout window.
// @Description RPG class inferred from workouts.
type ClassificationResult struct {
	Class            RPGClass `json:"rpg_class" example:"Warrior"`
	DominantActivity string   `json:"dominant_activity,omitempty" example:"gym"`
	WorkoutCount     int      `json:"workout_count" example:"5"`
	Category         string   `json:"category" example:"Strength"`
}

// WeeklyStats summarises a window of daily logs.
// @Description Aggregated statistics over a window of days.
type WeeklyStats struct {
	PeriodDays       int     `json:"period_days" example:"7"`
	TotalSteps       int     `json:"total_steps" example:"63000"`
	AvgSteps         int     `json:"avg_steps" example:"9000"`
	TotalCalories    int     `json:"total_calories" example:"3150"`
	AvgCalories      int     `json:"avg_calories" example:"450"`
	TotalSleepHours  float64 `json:"total_sleep_hours" example:"51.3"`
	AvgSleepHours    float64 `json:"avg_sleep_hours" example:"7.3"`
	DeepSleepMinutes int     `json:"deep_sleep_minutes" example:"420"`
	TotalWorkouts    int     `json:"total_workouts" example:"5"`
	FavoriteActivity string  `json:"favorite_activity" example:"gym"`
	AvgRecoveryScore float64 `json:"avg_recovery_score" example:"76.4"`
}
