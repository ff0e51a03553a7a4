// Package langfuse records coach advice as Langfuse traces and attaches
// player ratings to them through the HTTP ingestion API. An unconfigured
// client accepts every call and sends nothing.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/google/uuid"
)

const (
	sendTimeout = 5 * time.Second

	adviceTraceName = "coach-advice"
	ratingScoreName = "player_rating"
)

// Client is the subset of Langfuse the coach uses.
type Client interface {
	Enabled() bool
	// TraceAdvice stores one coach exchange and returns its trace ID. The ID
	// is returned even when delivery fails so callers can still hand it out.
	TraceAdvice(ctx context.Context, in AdviceTrace) (string, error)
	// ScoreAdvice attaches a player's rating to an earlier trace.
	ScoreAdvice(ctx context.Context, traceID string, rating int, comment string) error
}

// AdviceTrace is one coach request and the advice it produced.
type AdviceTrace struct {
	TraceID string
	UserID  string
	Model   string
	Request *domain.CoachRequest
	Advice  string
}

type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

type client struct {
	cfg        Config
	enabled    bool
	httpClient *http.Client
	now        func() time.Time
}

// NewClient returns a client that is disabled unless the base URL and both
// keys are set.
func NewClient(cfg Config) Client {
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	enabled := cfg.BaseURL != "" && cfg.PublicKey != "" && cfg.SecretKey != ""
	if enabled {
		log.Printf("[langfuse] enabled: base_url=%s env=%s", cfg.BaseURL, cfg.Environment)
	} else {
		log.Println("[langfuse] disabled: LANGFUSE_BASE_URL and keys are required")
	}

	return &client{
		cfg:        cfg,
		enabled:    enabled,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
}

func (c *client) Enabled() bool {
	return c.enabled
}

func (c *client) TraceAdvice(ctx context.Context, in AdviceTrace) (string, error) {
	traceID := in.TraceID
	if traceID == "" {
		traceID = uuid.New().String()
	}
	if !c.enabled {
		return traceID, nil
	}

	metadata := map[string]any{"model": in.Model}
	if c.cfg.Environment != "" {
		metadata["environment"] = c.cfg.Environment
	}
	var tags []string
	if in.Request != nil {
		tags = append(tags, "context:"+string(in.Request.Context))
	}

	body := traceBody{
		ID:       traceID,
		Name:     adviceTraceName,
		UserID:   in.UserID,
		Input:    in.Request,
		Output:   map[string]string{"advice": in.Advice},
		Tags:     tags,
		Metadata: metadata,
	}
	return traceID, c.send(ctx, "trace-create", body)
}

func (c *client) ScoreAdvice(ctx context.Context, traceID string, rating int, comment string) error {
	if !c.enabled {
		return nil
	}
	body := scoreBody{
		ID:      uuid.New().String(),
		TraceID: traceID,
		Name:    ratingScoreName,
		Value:   float64(rating),
		Comment: comment,
	}
	return c.send(ctx, "score-create", body)
}

func (c *client) send(ctx context.Context, eventType string, body any) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	payload, err := json.Marshal(batchPayload{Batch: []ingestionEvent{{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: c.now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}}})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", eventType, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/public/ingestion", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send %s: %w", eventType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s rejected with status %d", eventType, resp.StatusCode)
	}
	return nil
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
