package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical fitness coach inside a role-playing fitness game.

You receive computed game results for a single player: a recovery score and training status, battle points, level and XP progress, RPG class, weekly statistics, or the workout just finished. You must base your advice only on the provided data.

Rules:
- Do NOT provide medical advice or diagnoses.
- Respect the training status: if it is REST_MODE, recommend rest or light activity only.
- A null resting heart rate means the value is unknown. Do not guess it.
- For a finished workout, say whether its intensity suited the recovery status and how to recover from it.
- Be concise, concrete and encouraging. Two to four sentences.

You must respond as strict JSON with exactly this shape:

{
  "advice": "2-4 sentences of advice for today."
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Context: %s

Here is JSON describing the player's results:

%s

Based on this data, respond in the required JSON format.`

// CoachLLM turns engine results into short advice.
type CoachLLM interface {
	GenerateAdvice(ctx context.Context, req *domain.CoachRequest) (string, error)
	Model() string
}

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

type adviceOutput struct {
	Advice string `json:"advice"`
}

// NewOpenAIClient creates a new OpenAI client for generating advice.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

func (c *OpenAIClient) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// GenerateAdvice calls OpenAI to produce advice for the given context.
func (c *OpenAIClient) GenerateAdvice(ctx context.Context, req *domain.CoachRequest) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, req.Context, string(payload))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseAdvice(resp.Choices[0].Message.Content)
}

func parseAdvice(content string) (string, error) {
	var out adviceOutput
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	advice := strings.TrimSpace(out.Advice)
	if advice == "" {
		return "", fmt.Errorf("%w: empty advice", ErrOpenAIResponse)
	}
	return advice, nil
}
