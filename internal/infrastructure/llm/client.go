package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/dashlens/backend/internal/domain"
)

// Client talks to an OpenAI-compatible chat completion endpoint. The provider
// is treated as opaque: one POST in, one assistant message out.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	debug      bool
}

// chatMessage mirrors the provider's message shape
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// completionRequest is the request body for the completions endpoint
type completionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// completionResponse holds the fields we read from the provider response
type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// systemPrompt frames the assistant for delivery-driver conversations
const systemPrompt = "You are a helpful assistant for gig delivery drivers. " +
	"Answer questions about deliveries, earnings, and logistics concisely."

// NewClient creates a new completion client
func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Complete sends the conversation history to the provider and returns the
// assistant's reply text
func (c *Client) Complete(ctx context.Context, history []domain.Message) (string, error) {
	messages := make([]chatMessage, 0, len(history)+1)
	messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	for _, msg := range history {
		messages = append(messages, chatMessage{Role: msg.Role, Content: msg.Content})
	}

	payload, err := json.Marshal(completionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailure, err)
	}

	reqURL := fmt.Sprintf("%s/v1/chat/completions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailure, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[LLM] provider error - status: %d, body: %s", resp.StatusCode, string(body))
		}
		return "", fmt.Errorf("%w: status %d", domain.ErrCompletionFailure, resp.StatusCode)
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("%w: decode: %v", domain.ErrCompletionFailure, err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrCompletionFailure)
	}

	return completion.Choices[0].Message.Content, nil
}
