package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/llm"
	"github.com/blaisecz/vital-quest/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// writeServiceError maps a service error onto a problem response. notFound
// names the missing resource; action describes the failed operation.
func writeServiceError(w http.ResponseWriter, err error, notFound, action string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(notFound).Write(w)
	case errors.Is(err, domain.ErrDuplicateTeams):
		problem.BadRequest("A battle needs two different teams").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	case errors.Is(err, domain.ErrMalformedInput):
		problem.ValidationError(err.Error(), nil).Write(w)
	case errors.Is(err, domain.ErrConflict):
		problem.Conflict(err.Error()).Write(w)
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
	case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
		problem.BadGateway("llm-error", "LLM Error", "Failed to generate advice from LLM").Write(w)
	default:
		log.Printf("[api] %s: %v", action, err)
		problem.InternalError("Failed to " + action).Write(w)
	}
}

// pathUUID parses a UUID path parameter, writing a 400 when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		problem.BadRequest("Invalid " + label + " ID format").Write(w)
		return uuid.Nil, false
	}
	return id, true
}

// queryDays parses the optional days query parameter; 0 means the default window.
func queryDays(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return 0, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{{
			Field:   "days",
			Message: "must be a positive integer",
		}}).Write(w)
		return 0, false
	}
	return days, true
}

// queryLimit parses the optional limit query parameter; 0 means the default size.
func queryLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{{
			Field:   "limit",
			Message: "must be a positive integer",
		}}).Write(w)
		return 0, false
	}
	return limit, true
}
