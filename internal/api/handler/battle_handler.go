package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/vital-quest/internal/api/validation"
	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/service"
	"github.com/blaisecz/vital-quest/pkg/problem"
)

type BattleHandler struct {
	service service.BattleService
}

func NewBattleHandler(service service.BattleService) *BattleHandler {
	return &BattleHandler{service: service}
}

// Create handles POST /v1/battles
// @Summary Start a team battle
// @Description Start a contest between two different teams over an inclusive date range.
// @Tags battles
// @Accept json
// @Produce json
// @Param request body domain.CreateBattleRequest true "Battle definition"
// @Success 201 {object} domain.BattleResponse
// @Failure 400 {object} problem.Problem "Invalid body, same team twice or end before start"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /battles [post]
func (h *BattleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBattleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	battle, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Battle not found", "create battle")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(battle.ToResponse())
}

// GetByID handles GET /v1/battles/{battleId}
// @Summary Get a battle
// @Tags battles
// @Produce json
// @Param battleId path string true "Battle UUID" format(uuid)
// @Success 200 {object} domain.BattleResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /battles/{battleId} [get]
func (h *BattleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	battleID, ok := pathUUID(w, r, "battleId", "battle")
	if !ok {
		return
	}

	battle, err := h.service.GetByID(r.Context(), battleID)
	if err != nil {
		writeServiceError(w, err, "Battle not found", "get battle")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(battle.ToResponse())
}

// Leaderboard handles GET /v1/battles/{battleId}/leaderboard
// @Summary Get battle leaderboard
// @Description Teams ranked by their last aggregated score, highest first. Ties are ordered by team ID.
// @Tags battles
// @Produce json
// @Param battleId path string true "Battle UUID" format(uuid)
// @Success 200 {object} domain.BattleLeaderboard
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /battles/{battleId}/leaderboard [get]
func (h *BattleHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	battleID, ok := pathUUID(w, r, "battleId", "battle")
	if !ok {
		return
	}

	board, err := h.service.Leaderboard(r.Context(), battleID)
	if err != nil {
		writeServiceError(w, err, "Battle not found", "build leaderboard")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(board)
}

// Recompute handles POST /v1/battles/{battleId}/recompute
// @Summary Recompute battle scores now
// @Description Recompute both team totals immediately, using the same path as the periodic aggregation.
// @Tags battles
// @Produce json
// @Param battleId path string true "Battle UUID" format(uuid)
// @Success 200 {object} domain.BattleResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /battles/{battleId}/recompute [post]
func (h *BattleHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	battleID, ok := pathUUID(w, r, "battleId", "battle")
	if !ok {
		return
	}

	battle, err := h.service.Recompute(r.Context(), battleID)
	if err != nil {
		writeServiceError(w, err, "Battle not found", "recompute battle")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(battle.ToResponse())
}
