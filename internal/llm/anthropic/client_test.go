package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashureev/mood-sense/internal/llm"
)

func TestGenerateConcatenatesTextBlocks(t *testing.T) {
	t.Parallel()

	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-ant-test", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-5-haiku-latest",
			"stop_reason": "end_turn",
			"content": [
				{"type": "text", "text": "You're doing "},
				{"type": "text", "text": "fine."}
			],
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer srv.Close()

	c := NewClient("sk-ant-test", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	text, err := c.Generate(context.Background(), "sys", "usr", llm.Params{Temperature: 0.7, MaxTokens: 1024})
	require.NoError(t, err)

	assert.Equal(t, "You're doing fine.", text)
	assert.Equal(t, DefaultModel, body["model"])
	assert.EqualValues(t, 1024, body["max_tokens"])
	assert.InDelta(t, 0.7, body["temperature"], 1e-9)
}

func TestGenerateAPIErrorIsWrapped(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`))
	}))
	defer srv.Close()

	c := NewClient("sk-ant-test", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	_, err := c.Generate(context.Background(), "s", "u", llm.Params{MaxTokens: 16})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic:")
}
