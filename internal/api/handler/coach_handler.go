package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/vital-quest/internal/api/validation"
	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/service"
	"github.com/blaisecz/vital-quest/pkg/problem"
)

// CoachHandler serves LLM advice built from engine results.
type CoachHandler struct {
	service service.CoachService
}

func NewCoachHandler(service service.CoachService) *CoachHandler {
	return &CoachHandler{service: service}
}

// Advise handles GET /v1/users/{userId}/coach
// @Summary Get coach advice
// @Description Ask the AI coach for short advice. The recovery context uses the day's recovery and battle scores; the progression context uses level, class and the last week's stats; the post_workout context uses the day's last workout and recovery.
// @Tags coach
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date query string true "Calendar date (YYYY-MM-DD)" example(2024-01-16)
// @Param context query string false "Advice context" Enums(recovery, progression, post_workout) default(recovery)
// @Success 200 {object} domain.CoachAdvice
// @Failure 400 {object} problem.Problem "Invalid user ID, date or context, or no workout for post_workout"
// @Failure 404 {object} problem.Problem "User or daily log not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/coach [get]
func (h *CoachHandler) Advise(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		problem.BadRequest("date is required").Write(w)
		return
	}

	advice, err := h.service.Advise(r.Context(), userID, date, r.URL.Query().Get("context"))
	if err != nil {
		writeServiceError(w, err, "User or daily log not found", "generate advice")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(advice)
}

// Feedback handles POST /v1/users/{userId}/coach/feedback
// @Summary Rate coach advice
// @Description Submit a 1-5 rating and optional comment for a previous advice response.
// @Tags coach
// @Accept json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CoachFeedbackRequest true "Rating"
// @Success 204 "Feedback recorded"
// @Failure 400 {object} problem.Problem "Invalid body or user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/coach/feedback [post]
func (h *CoachHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CoachFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Feedback(r.Context(), userID, &req); err != nil {
		writeServiceError(w, err, "User not found", "record feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
