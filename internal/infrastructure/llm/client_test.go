package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dashlens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-key", "https://api.example.com", "test-model")

	assert.NotNil(t, client)
	assert.Equal(t, "test-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.Equal(t, "test-model", client.model)
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		// System prompt plus the supplied history.
		require.Len(t, req.Messages, 3)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "assistant", req.Messages[2].Role)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Here's my advice."}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model")

	history := []domain.Message{
		{Role: domain.RoleUser, Content: "hello"},
		{Role: domain.RoleAssistant, Content: "hi, how can I help?"},
	}

	reply, err := client.Complete(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, "Here's my advice.", reply)
}

func TestComplete_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model")

	_, err := client.Complete(context.Background(), []domain.Message{{Role: domain.RoleUser, Content: "hi"}})
	assert.True(t, errors.Is(err, domain.ErrCompletionFailure))
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model")

	_, err := client.Complete(context.Background(), []domain.Message{{Role: domain.RoleUser, Content: "hi"}})
	assert.True(t, errors.Is(err, domain.ErrCompletionFailure))
}

func TestComplete_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model")

	_, err := client.Complete(context.Background(), []domain.Message{{Role: domain.RoleUser, Content: "hi"}})
	assert.True(t, errors.Is(err, domain.ErrCompletionFailure))
}
