package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/vital-quest/internal/domain"
)

func TestNewOpenAIClientWithoutKey(t *testing.T) {
	c := NewOpenAIClient("", "")
	if c != nil {
		t.Fatalf("expected nil client without api key")
	}

	_, err := c.GenerateAdvice(context.Background(), &domain.CoachRequest{Context: domain.CoachContextRecovery})
	if !errors.Is(err, ErrOpenAIUnavailable) {
		t.Fatalf("expected ErrOpenAIUnavailable, got %v", err)
	}
	if c.Model() != "" {
		t.Fatalf("expected empty model for nil client")
	}
}

func TestNewOpenAIClientDefaultModel(t *testing.T) {
	c := NewOpenAIClient("sk-test", "")
	if c.Model() != "gpt-4o-mini" {
		t.Fatalf("unexpected default model %q", c.Model())
	}
}

func TestParseAdvice(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"valid", `{"advice":" Take it easy today. "}`, "Take it easy today.", false},
		{"empty advice", `{"advice":""}`, "", true},
		{"not json", "Take it easy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAdvice(tt.content)
			if tt.wantErr {
				if !errors.Is(err, ErrOpenAIResponse) {
					t.Fatalf("expected ErrOpenAIResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}
