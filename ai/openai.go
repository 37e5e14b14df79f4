package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andrewpaige1/studysync-api/logger"
)

const (
	DefaultBaseURL = "https://api.openai.com"
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 60 * time.Second
)

type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client implements Service against the OpenAI Responses API, or any
// compatible endpoint reachable at BaseURL.
type Client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

var _ Service = (*Client)(nil)

func NewClient(cfg ClientConfig, log *logger.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing OPENAI_API_KEY", ErrNotConfigured)
	}
	if log == nil {
		log = logger.NewNop()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		log:        log.With("service", "OpenAIClient", "model", model),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}, nil
}

func (c *Client) Summarize(ctx context.Context, text string) (Summary, error) {
	if err := CheckSummaryInput(text); err != nil {
		return Summary{}, err
	}
	user, err := render(summaryPrompt, struct{ Text string }{text})
	if err != nil {
		return Summary{}, err
	}

	var out Summary
	if err := c.generateJSON(ctx, summarySystem, user, "generate_summary", summarySchema(), &out); err != nil {
		return Summary{}, err
	}
	if err := out.Validate(); err != nil {
		return Summary{}, err
	}
	return out, nil
}

func (c *Client) ScheduleBreaks(ctx context.Context, studyDurationMinutes int) (BreakSchedule, error) {
	if err := CheckBreaksInput(studyDurationMinutes); err != nil {
		return BreakSchedule{}, err
	}
	user, err := render(breaksPrompt, struct{ Minutes int }{studyDurationMinutes})
	if err != nil {
		return BreakSchedule{}, err
	}

	var out BreakSchedule
	if err := c.generateJSON(ctx, breaksSystem, user, "optimal_break_schedule", breaksSchema(), &out); err != nil {
		return BreakSchedule{}, err
	}
	if err := out.Validate(); err != nil {
		return BreakSchedule{}, err
	}
	return out, nil
}

func (c *Client) GenerateQuiz(ctx context.Context, topic string, numQuestions int) (Quiz, error) {
	if err := CheckQuizInput(topic, numQuestions); err != nil {
		return Quiz{}, err
	}
	user, err := render(quizPrompt, struct {
		Topic        string
		NumQuestions int
		Options      int
	}{strings.TrimSpace(topic), numQuestions, OptionsPerQuestion})
	if err != nil {
		return Quiz{}, err
	}

	var out Quiz
	if err := c.generateJSON(ctx, quizSystem, user, "practice_quiz", quizSchema(), &out); err != nil {
		return Quiz{}, err
	}
	if err := out.Validate(numQuestions); err != nil {
		return Quiz{}, err
	}
	return out, nil
}

// HTTPError is a non-2xx answer from the model provider.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("openai http %d: %s", e.StatusCode, e.Body)
}

type inputMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responsesRequest struct {
	Model string         `json:"model"`
	Input []inputMessage `json:"input"`
	Text  struct {
		Format map[string]any `json:"format,omitempty"`
	} `json:"text"`
}

type responsesResponse struct {
	Output []struct {
		Type    string `json:"type"`
		Role    string `json:"role,omitempty"`
		Content []struct {
			Type    string `json:"type"`
			Text    string `json:"text,omitempty"`
			Refusal string `json:"refusal,omitempty"`
		} `json:"content,omitempty"`
	} `json:"output"`
}

// generateJSON sends one structured-output request and decodes the model's
// JSON text into out. There are no retries.
func (c *Client) generateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any, out any) error {
	req := responsesRequest{
		Model: c.model,
		Input: []inputMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	req.Text.Format = map[string]any{
		"type":   "json_schema",
		"name":   schemaName,
		"schema": schema,
		"strict": true,
	}

	start := time.Now()
	var resp responsesResponse
	if err := c.post(ctx, "/v1/responses", req, &resp); err != nil {
		c.log.Warn("Model request failed", "schema", schemaName, "duration", time.Since(start).String(), "error", err)
		return err
	}
	c.log.Debug("Model request finished", "schema", schemaName, "duration", time.Since(start).String())

	text, refusal := extractOutputText(resp)
	if refusal != "" {
		return fmt.Errorf("%w: model refused: %s", ErrInvalidResponse, refusal)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: no output_text found in response", ErrInvalidResponse)
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: failed to parse model JSON: %w", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: openai decode error: %w", ErrInvalidResponse, err)
	}
	return nil
}

func extractOutputText(resp responsesResponse) (text, refusal string) {
	var b strings.Builder
	for _, item := range resp.Output {
		if item.Type != "message" || item.Role != "assistant" {
			continue
		}
		for _, c := range item.Content {
			switch c.Type {
			case "output_text":
				b.WriteString(c.Text)
			case "refusal":
				refusal = c.Refusal
			}
		}
	}
	return b.String(), refusal
}
