package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = ts.URL + "/v1"
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), chatModel: DefaultChatModel}
}

func Test_Chat_Sends_History_And_Returns_Reply(t *testing.T) {
	var got openai.ChatCompletionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "How long has it hurt?"},
			}},
		})
	})

	reply, err := c.Chat(context.Background(), []Message{
		{Role: "system", Content: "be brief"},
		{Role: "typing", Content: "odd role"},
		{Role: "user", Content: "I have a headache"},
	})
	require.NoError(t, err)
	assert.Equal(t, "How long has it hurt?", reply)

	assert.Equal(t, DefaultChatModel, got.Model)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, openai.ChatMessageRoleUser, got.Messages[1].Role)
}

func Test_Chat_Empty_Completion_Is_An_Error(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func Test_Chat_API_Error(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down","type":"rate_limit"}}`))
	})
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func Test_NewOpenAIClient_Default_Model(t *testing.T) {
	assert.Equal(t, DefaultChatModel, NewOpenAIClient("k", "").chatModel)
	assert.Equal(t, "gpt-4o", NewOpenAIClient("k", "gpt-4o").chatModel)
}
