package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// Message is a minimal chat message used by the core chat service.
// Role must be one of: "system", "user", or "assistant".
type Message struct {
	Role    string
	Content string
}

// Client generates an assistant turn from the message history
// (system + prior turns + latest user).
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// DefaultChatModel is used when no model is configured.
const DefaultChatModel = "gpt-4o-mini"

// OpenAIClient calls the OpenAI API for chat responses.
type OpenAIClient struct {
	client    *openai.Client
	chatModel string
}

// NewOpenAIClient constructs an OpenAI-backed LLM client.
func NewOpenAIClient(apiKey, chatModel string) *OpenAIClient {
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	return &OpenAIClient{
		client:    openai.NewClient(apiKey),
		chatModel: chatModel,
	}
}

// Chat sends the message history to the OpenAI chat completion API and returns
// the assistant's response.
func (c *OpenAIClient) Chat(ctx context.Context, messages []Message) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			// coerce anything unknown to user
			role = openai.ChatMessageRoleUser
		}
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    oaMsgs,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
