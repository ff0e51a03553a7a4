package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/vital-quest/internal/service"
	"github.com/go-chi/chi/v5"
)

// ScoreHandler serves per-day scores and window statistics.
type ScoreHandler struct {
	service service.ScoringService
}

func NewScoreHandler(service service.ScoringService) *ScoreHandler {
	return &ScoreHandler{service: service}
}

// Recovery handles GET /v1/users/{userId}/daily-logs/{date}/recovery
// @Summary Get recovery score
// @Description Score readiness (0-100) for a stored day. Deep sleep under 45 minutes always means REST_MODE. The resting heart rate is reported with its source and is null when unknown.
// @Tags scoring
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date path string true "Calendar date (YYYY-MM-DD)" example(2024-01-16)
// @Success 200 {object} domain.RecoveryResult
// @Failure 400 {object} problem.Problem "Invalid user ID or date"
// @Failure 404 {object} problem.Problem "User or daily log not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/daily-logs/{date}/recovery [get]
func (h *ScoreHandler) Recovery(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.Recovery(r.Context(), userID, chi.URLParam(r, "date"))
	if err != nil {
		writeServiceError(w, err, "Daily log not found", "score recovery")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// BattleScore handles GET /v1/users/{userId}/daily-logs/{date}/battle-score
// @Summary Get battle points
// @Description Battle points for a stored day: 0.05 per step, 5 per deep sleep minute and duration x RPE per workout.
// @Tags scoring
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date path string true "Calendar date (YYYY-MM-DD)" example(2024-01-16)
// @Success 200 {object} domain.BattleScore
// @Failure 400 {object} problem.Problem "Invalid user ID or date"
// @Failure 404 {object} problem.Problem "User or daily log not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/daily-logs/{date}/battle-score [get]
func (h *ScoreHandler) BattleScore(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.BattleScore(r.Context(), userID, chi.URLParam(r, "date"))
	if err != nil {
		writeServiceError(w, err, "Daily log not found", "score battle points")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Weekly handles GET /v1/users/{userId}/stats/weekly
// @Summary Get window statistics
// @Description Totals and averages over the last N calendar days in the user's timezone, today included.
// @Tags scoring
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param days query integer false "Window length in days" default(7) minimum(1) maximum(90)
// @Success 200 {object} domain.WeeklyStats
// @Failure 400 {object} problem.Problem "Invalid user ID or window"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/stats/weekly [get]
func (h *ScoreHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	days, ok := queryDays(w, r)
	if !ok {
		return
	}

	result, err := h.service.Weekly(r.Context(), userID, days)
	if err != nil {
		writeServiceError(w, err, "User not found", "compute weekly stats")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
