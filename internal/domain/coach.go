package domain

// CoachContext selects what the coach is asked to comment on.
type CoachContext string

const (
	CoachContextRecovery    CoachContext = "recovery"
	CoachContextProgression CoachContext = "progression"
	CoachContextPostWorkout CoachContext = "post_workout"
)

// ParseCoachContext maps a query value onto a known context.
func ParseCoachContext(s string) (CoachContext, error) {
	switch CoachContext(s) {
	case CoachContextRecovery, CoachContextProgression, CoachContextPostWorkout:
		return CoachContext(s), nil
	case "":
		return CoachContextRecovery, nil
	}
	return "", ErrInvalidInput
}

// CoachRequest is the structured input handed to the advice generator.
type CoachRequest struct {
	Context   CoachContext    `json:"context"`
	Date      string          `json:"date"`
	Recovery  *RecoveryResult `json:"recovery,omitempty"`
	Battle    *BattleScore    `json:"battle,omitempty"`
	Workout   *ManualWorkout  `json:"workout,omitempty"`
	Progress  *UserProgress   `json:"progress,omitempty"`
	NextLevel int             `json:"xp_required_for_next_level,omitempty"`
	Class     RPGClass        `json:"rpg_class,omitempty"`
	Weekly    *WeeklyStats    `json:"weekly,omitempty"`
}

// CoachAdvice is the response of the coach endpoint.
// @Description Short advice generated from engine results.
type CoachAdvice struct {
	Context CoachContext `json:"context" example:"recovery"`
	Date    string       `json:"date" example:"2024-01-16"`
	Advice  string       `json:"advice" example:"Deep sleep was short last night; keep today's session light."`
	Model   string       `json:"model" example:"gpt-4o-mini"`
	// Trace ID to reference when rating this advice
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// CoachFeedbackRequest rates an earlier piece of advice.
// @Description Player rating for coach advice.
type CoachFeedbackRequest struct {
	TraceID string `json:"trace_id" validate:"required,max=64" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	Rating  int    `json:"rating" validate:"min=1,max=5" example:"4"`
	Comment string `json:"comment,omitempty" validate:"max=500" example:"Helpful, thanks!"`
}
