package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/vital-quest/internal/api/validation"
	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/service"
	"github.com/blaisecz/vital-quest/pkg/pagination"
	"github.com/blaisecz/vital-quest/pkg/problem"
	"github.com/go-chi/chi/v5"
)

type DailyLogHandler struct {
	service service.DailyLogService
}

func NewDailyLogHandler(service service.DailyLogService) *DailyLogHandler {
	return &DailyLogHandler{service: service}
}

// Upsert handles PUT /v1/users/{userId}/daily-logs/{date}
// @Summary Record a day of activity
// @Description Store steps, calories, sleep segments, heart-rate samples and workouts for one calendar day in the user's timezone. Sending the same date again replaces the stored day.
// @Tags daily-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date path string true "Calendar date (YYYY-MM-DD)" example(2024-01-16)
// @Param request body domain.UpsertDailyLogRequest true "Activity data for the day"
// @Success 200 {object} domain.DailyLogResponse "Stored daily log"
// @Failure 400 {object} problem.Problem "Invalid body, user ID or date"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Malformed activity data"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/daily-logs/{date} [put]
func (h *DailyLogHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.UpsertDailyLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Upsert(r.Context(), userID, chi.URLParam(r, "date"), &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "store daily log")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record.ToResponse())
}

// List handles GET /v1/users/{userId}/daily-logs
// @Summary List daily logs
// @Description Fetch paginated activity history, newest date first. Filter by an inclusive date range.
// @Tags daily-logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "First date (YYYY-MM-DD)" example(2024-01-01)
// @Param to query string false "Last date (YYYY-MM-DD)" example(2024-01-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.DailyLogListResponse "Daily logs with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/daily-logs [get]
func (h *DailyLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err, "User not found", "list daily logs")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.DailyLogFilter, []problem.FieldError) {
	var filter domain.DailyLogFilter
	var fieldErrors []problem.FieldError

	parseDate := func(name string) *time.Time {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			return nil
		}
		d, err := domain.ParseDate(raw, time.UTC)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   name,
				Message: "must be a date in YYYY-MM-DD format",
			})
			return nil
		}
		return &d
	}
	filter.From = parseDate("from")
	filter.To = parseDate("to")

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	cursor, err := pagination.DecodeCursor(r.URL.Query().Get("cursor"))
	if err != nil {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "cursor",
			Message: "is not a valid page cursor",
		})
	}
	filter.Cursor = cursor

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
