package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/blaisecz/vital-quest/internal/api/validation"
	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/service"
	"github.com/blaisecz/vital-quest/pkg/problem"
	"github.com/go-chi/chi/v5"
)

// @title Vital Quest API
// @version 1.0
// @description Fitness scoring and RPG progression: recovery, battle points, XP, classes and team battles
// @BasePath /v1

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /v1/users
// @Summary Create a new player
// @Description Create a level-1 Villager with a timezone and an optional team
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.CreateUserRequest true "User creation request"
// @Success 201 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "create user")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user.ToResponse())
}

// GetByID handles GET /v1/users/{userId}
// @Summary Get user by ID
// @Description Get a player's level, XP, class and attributes
// @Tags users
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "get user")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user.ToResponse())
}

// Leaderboard handles GET /v1/leaderboard
// @Summary Global player leaderboard
// @Description Rank all players by level, then XP within the level
// @Tags leaderboards
// @Produce json
// @Param limit query int false "Number of players (default 10, max 100)"
// @Success 200 {object} domain.PlayerLeaderboard
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /leaderboard [get]
func (h *UserHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	h.writeLeaderboard(w, r, "")
}

// TeamLeaderboard handles GET /v1/teams/{teamId}/leaderboard
// @Summary Team player leaderboard
// @Description Rank the members of one team by level, then XP within the level
// @Tags leaderboards
// @Produce json
// @Param teamId path string true "Team ID"
// @Param limit query int false "Number of players (default 50, max 100)"
// @Success 200 {object} domain.PlayerLeaderboard
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /teams/{teamId}/leaderboard [get]
func (h *UserHandler) TeamLeaderboard(w http.ResponseWriter, r *http.Request) {
	teamID := strings.TrimSpace(chi.URLParam(r, "teamId"))
	if teamID == "" {
		problem.BadRequest("Team ID must not be blank").Write(w)
		return
	}
	h.writeLeaderboard(w, r, teamID)
}

func (h *UserHandler) writeLeaderboard(w http.ResponseWriter, r *http.Request, teamID string) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}

	board, err := h.service.Leaderboard(r.Context(), teamID, limit)
	if err != nil {
		writeServiceError(w, err, "Team not found", "get leaderboard")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(board)
}
