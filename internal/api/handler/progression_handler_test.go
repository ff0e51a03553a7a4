package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/google/uuid"
)

func TestProgressionHandler_ApplyXP(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockService    *MockProgressionService
		wantStatusCode int
	}{
		{
			name:           "activity without recovery",
			body:           `{"steps": 10000, "calories_burned": 500, "sleep_total_minutes": 450}`,
			mockService:    &MockProgressionService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "explicit recovery is forwarded",
			body: `{"date": "2024-01-16", "steps": 10000, "recovery_score": 75}`,
			mockService: &MockProgressionService{
				applyFunc: func(ctx context.Context, id uuid.UUID, a *domain.ActivitySnapshot) (*domain.ProgressionResponse, error) {
					if a.RecoveryScore == nil || *a.RecoveryScore != 75 || a.Date != "2024-01-16" {
						return nil, fmt.Errorf("unexpected snapshot %+v", a)
					}
					return &domain.ProgressionResponse{RecoveryScore: 75}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "recovery out of range",
			body:           `{"steps": 100, "recovery_score": 101}`,
			mockService:    &MockProgressionService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "negative steps",
			body:           `{"steps": -1}`,
			mockService:    &MockProgressionService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "bad date",
			body:           `{"date": "yesterday", "steps": 1}`,
			mockService:    &MockProgressionService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "corrupt stored progress",
			body: `{"steps": 1}`,
			mockService: &MockProgressionService{
				applyFunc: func(ctx context.Context, id uuid.UUID, a *domain.ActivitySnapshot) (*domain.ProgressionResponse, error) {
					return nil, fmt.Errorf("%w: progress level=0 xp=0", domain.ErrMalformedInput)
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "runaway level-up",
			body: `{"steps": 1}`,
			mockService: &MockProgressionService{
				applyFunc: func(ctx context.Context, id uuid.UUID, a *domain.ActivitySnapshot) (*domain.ProgressionResponse, error) {
					return nil, domain.ErrInvariantViolation
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProgressionHandler(tt.mockService)

			req := newRequest(http.MethodPost, "/v1/users/"+userID.String()+"/progression/xp", tt.body,
				map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.ApplyXP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("ApplyXP() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestProgressionHandler_ApplyXPResponseShape(t *testing.T) {
	userID := uuid.New().String()
	handler := NewProgressionHandler(&MockProgressionService{})

	req := newRequest(http.MethodPost, "/v1/users/"+userID+"/progression/xp", `{"steps": 11000}`,
		map[string]string{"userId": userID})
	rec := httptest.NewRecorder()
	handler.ApplyXP(rec, req)

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	for _, key := range []string{"xp_gained", "new_xp_total", "new_level", "leveled_up", "xp_required_for_next_level"} {
		if _, ok := body[key]; !ok {
			t.Errorf("response is missing %s: %v", key, body)
		}
	}
}

func TestProgressionHandler_Classify(t *testing.T) {
	userID := uuid.New().String()
	handler := NewProgressionHandler(&MockProgressionService{
		classifyFunc: func(ctx context.Context, id uuid.UUID, days int) (*domain.ClassificationResult, error) {
			if days != 30 {
				return nil, fmt.Errorf("days = %d", days)
			}
			return &domain.ClassificationResult{Class: domain.ClassMonk, DominantActivity: "yoga", WorkoutCount: 4, Category: "Flexibility"}, nil
		},
	})

	req := newRequest(http.MethodGet, "/v1/users/"+userID+"/class?days=30", "", map[string]string{"userId": userID})
	rec := httptest.NewRecorder()
	handler.Classify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Classify() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var res domain.ClassificationResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if res.Class != domain.ClassMonk || res.Category != "Flexibility" {
		t.Errorf("Classify() = %+v", res)
	}
}
