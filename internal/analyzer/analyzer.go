package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	requestTimeout = 30 * time.Second
	maxRetries     = 2
)

// Sentinel errors.
var (
	// ErrEmptyMessage is returned when the input has no content to analyze.
	ErrEmptyMessage = errors.New("empty mood description")

	// ErrNoResponse is returned when the model returns no completion.
	ErrNoResponse = errors.New("model returned no completion")
)

// Analyzer classifies mood descriptions via a chat completion model.
type Analyzer struct {
	client openai.Client
	model  string
}

// New creates an Analyzer from the provided configuration.
func New(cfg *Config) *Analyzer {
	client := openai.NewClient(
		option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")),
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
		option.WithMaxRetries(maxRetries),
	)
	return &Analyzer{client: client, model: cfg.Model}
}

// Analyze classifies a free-text mood description. The current time is
// appended to the prompt so the model can infer time context.
func (a *Analyzer) Analyze(ctx context.Context, message string) (*Analysis, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	prompt := fmt.Sprintf("%s\n\nCurrent context: %s", message, time.Now().Format("Monday, 3:04 PM"))

	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.3),
		TopP:        openai.Float(0.8),
	})
	if err != nil {
		return nil, fmt.Errorf("calling chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, ErrNoResponse
	}

	analysis, err := parseAnalysis(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	log.Printf("analyzer: primary_mood=%s intensity=%d confidence=%.2f",
		analysis.PrimaryMood, analysis.Intensity, analysis.Confidence)
	return analysis, nil
}

// parseAnalysis decodes the model output, tolerating markdown fences
// around the JSON document.
func parseAnalysis(content string) (*Analysis, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("parsing analysis response: %w", err)
	}

	analysis.normalize()
	if err := analysis.validate(); err != nil {
		return nil, err
	}
	return &analysis, nil
}
