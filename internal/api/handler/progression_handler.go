package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/vital-quest/internal/api/validation"
	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/service"
	"github.com/blaisecz/vital-quest/pkg/problem"
)

type ProgressionHandler struct {
	service service.ProgressionService
}

func NewProgressionHandler(service service.ProgressionService) *ProgressionHandler {
	return &ProgressionHandler{service: service}
}

// ApplyXP handles POST /v1/users/{userId}/progression/xp
// @Summary Apply activity XP
// @Description Convert activity into XP, roll over levels and update attributes. When recovery_score is omitted it is scored from the stored log for date, or defaults to 50.
// @Tags progression
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.ActivitySnapshot true "Activity that earns XP"
// @Success 200 {object} domain.ProgressionResponse
// @Failure 400 {object} problem.Problem "Invalid body or user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid activity values"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/progression/xp [post]
func (h *ProgressionHandler) ApplyXP(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.ActivitySnapshot
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.service.ApplyActivity(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "apply XP")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Classify handles GET /v1/users/{userId}/class
// @Summary Infer RPG class
// @Description Classify the user from the workouts of the last N days and store the class.
// @Tags progression
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param days query integer false "Window length in days" default(7) minimum(1) maximum(90)
// @Success 200 {object} domain.ClassificationResult
// @Failure 400 {object} problem.Problem "Invalid user ID or window"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/class [get]
func (h *ProgressionHandler) Classify(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	days, ok := queryDays(w, r)
	if !ok {
		return
	}

	result, err := h.service.Classify(r.Context(), userID, days)
	if err != nil {
		writeServiceError(w, err, "User not found", "classify user")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
