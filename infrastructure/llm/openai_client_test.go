package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wordgraph/pkg/observability"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewOpenAIClient(Options{
		APIKey:  "sk-test",
		Model:   "gpt-4",
		BaseURL: srv.URL + "/v1",
	}, nil, nil, zap.NewNop())
}

func writeCompletion(w http.ResponseWriter, choices ...string) {
	resp := openai.ChatCompletionResponse{Model: "gpt-4"}
	for i, content := range choices {
		resp.Choices = append(resp.Choices, openai.ChatCompletionChoice{
			Index:        i,
			Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
			FinishReason: openai.FinishReasonStop,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func TestOpenAIClient_Complete(t *testing.T) {
	var got openai.ChatCompletionRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeCompletion(w, "Rust\nZig")
	})

	content, err := client.Complete(context.Background(), "You are a helpful assistant.", "list terms")

	require.NoError(t, err)
	assert.Equal(t, "Rust\nZig", content)
	assert.Equal(t, "gpt-4", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, "You are a helpful assistant.", got.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, got.Messages[1].Role)
	assert.Equal(t, "list terms", got.Messages[1].Content)
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w)
	})

	_, err := client.Complete(context.Background(), "system", "prompt")

	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestOpenAIClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
	})

	_, err := client.Complete(context.Background(), "system", "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OpenAI API call failed")
	assert.Contains(t, err.Error(), "Incorrect API key provided")

	var apiErr *openai.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.HTTPStatusCode)
}

func TestOpenAIClient_HonoursCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w, "late")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "system", "prompt")
	assert.ErrorContains(t, err, "context canceled")
}

func TestOpenAIClient_CompleteWithinTrace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w, "Rust")
	}))
	t.Cleanup(srv.Close)

	client := NewOpenAIClient(Options{
		APIKey:  "sk-test",
		Model:   "gpt-4",
		BaseURL: srv.URL + "/v1",
	}, observability.NewTracer("wordgraph"), nil, zap.NewNop())

	ctx, seg := xray.BeginSegment(context.Background(), "request")
	defer seg.Close(nil)

	content, err := client.Complete(ctx, "system", "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Rust", content)
	// annotations land on the provider subsegment, not the request segment
	assert.NotContains(t, seg.Annotations, "model")
}
