package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	anthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"

	// DefaultModel is the model used for summarization.
	DefaultModel = "claude-3-5-sonnet-20241022"

	// maxOutputTokens bounds the generated summary. The delivery channel
	// truncates at 1600 characters anyway, so long outputs are wasted.
	maxOutputTokens = 1500
)

// Summarizer generates a natural-language summary from prepared event
// text. Implementations must return concise content suitable for a chat
// message.
type Summarizer interface {
	Summarize(ctx context.Context, promptTemplate, eventsText string) (string, error)
}

// SummarizationError reports a failed summarization request.
type SummarizationError struct {
	Model string
	Err   error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization with %s failed: %v", e.Model, e.Err)
}

func (e *SummarizationError) Unwrap() error {
	return e.Err
}

// ClaudeClient implements Summarizer against the Anthropic Messages API.
type ClaudeClient struct {
	apiKey  string
	model   string
	baseURL string
	hc      *http.Client
}

// NewClaudeClient creates a client for the Anthropic API.
func NewClaudeClient(apiKey string) *ClaudeClient {
	return &ClaudeClient{
		apiKey:  apiKey,
		model:   DefaultModel,
		baseURL: anthropicBaseURL,
		hc:      &http.Client{Timeout: 60 * time.Second},
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *apiError      `json:"error"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Summarize sends the prompt template and event text as a single user
// message and returns the generated summary text.
func (c *ClaudeClient) Summarize(ctx context.Context, promptTemplate, eventsText string) (string, error) {
	payload := messagesRequest{
		Model:     c.model,
		MaxTokens: maxOutputTokens,
		Messages: []message{
			{Role: "user", Content: promptTemplate + "\n\n" + eventsText},
		},
	}

	body := &bytes.Buffer{}
	if err := json.NewEncoder(body).Encode(payload); err != nil {
		return "", &SummarizationError{Model: c.model, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", body)
	if err != nil {
		return "", &SummarizationError{Model: c.model, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Anthropic-Version", anthropicVersion)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", &SummarizationError{Model: c.model, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &SummarizationError{Model: c.model, Err: err}
	}

	var decoded messagesResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", &SummarizationError{Model: c.model, Err: fmt.Errorf("invalid response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil {
			return "", &SummarizationError{
				Model: c.model,
				Err:   fmt.Errorf("API error %s: %s", decoded.Error.Type, decoded.Error.Message),
			}
		}
		return "", &SummarizationError{
			Model: c.model,
			Err:   fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	for _, block := range decoded.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}

	return "", &SummarizationError{Model: c.model, Err: fmt.Errorf("response contains no text content")}
}
