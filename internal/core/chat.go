package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"health-chat/internal/i18n"
	"health-chat/internal/llm"
	"health-chat/pkg"
)

// ErrReplyFailed marks a reply that could not be generated by the language
// model.  The canned reply is returned alongside it.
var ErrReplyFailed = errors.New("reply generation failed")

// ChatService produces the assistant's answer to the latest user message.
// Without an LLM it returns the canned, templated reply.
type ChatService struct {
	LLM llm.Client
	log *slog.Logger
}

// NewChatService constructs a new ChatService.  client may be nil.
func NewChatService(client llm.Client, log *slog.Logger) *ChatService {
	if log == nil {
		log = slog.Default()
	}
	return &ChatService{LLM: client, log: log}
}

// Canned returns the simulated reply for a language.
func Canned(lang string) string {
	return i18n.Resolve(lang).AssistantName + ": " + CannedReply
}

// Reply generates the assistant's reply in lang given the conversation so
// far.  Typing placeholders in history are skipped.  On LLM failure the
// canned reply is returned together with an error wrapping ErrReplyFailed.
func (s *ChatService) Reply(ctx context.Context, lang string, history []pkg.Message) (string, error) {
	if s.LLM == nil {
		return Canned(lang), nil
	}

	name := "English"
	if o, ok := i18n.Lookup(lang); ok {
		name = o.Name
	}
	msgs := []llm.Message{{Role: "system", Content: fmt.Sprintf(SystemPrompt, name)}}
	for _, m := range history {
		if m.IsPlaceholder() {
			continue
		}
		msgs = append(msgs, llm.Message{Role: string(m.Role), Content: m.Content})
	}

	resp, err := s.LLM.Chat(ctx, msgs)
	if err != nil {
		s.log.Warn("LLM reply failed, using canned reply", "lang", lang, "error", err)
		return Canned(lang), fmt.Errorf("%w: %v", ErrReplyFailed, err)
	}
	if resp == "" {
		return Canned(lang), fmt.Errorf("%w: empty response", ErrReplyFailed)
	}
	return resp, nil
}
