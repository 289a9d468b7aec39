package pkg

import (
	"strings"
	"time"
)

// MessageRole describes who authored a message.  A typing message is a
// transient placeholder for a reply that has not arrived yet.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleTyping    MessageRole = "typing"
)

// TypingIDPrefix marks placeholder ids.  Each pending reply gets its own
// placeholder id so that a reply only ever replaces its own placeholder.
const TypingIDPrefix = "typing:"

// Message represents a chat message in a session.
type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"ts"`
}

// IsPlaceholder reports whether m is a typing placeholder.
func (m Message) IsPlaceholder() bool {
	return m.Role == RoleTyping || strings.HasPrefix(m.ID, TypingIDPrefix)
}

// Direction is the text direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// LanguageOption is one entry of the static language list shown during
// onboarding and in the language switcher.
type LanguageOption struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	NativeName string    `json:"native"`
	Direction  Direction `json:"dir"`
}

// Label is the text shown on a language button, e.g. "Español (Spanish)".
func (o LanguageOption) Label() string {
	return o.NativeName + " (" + o.Name + ")"
}

// Document holds the attributes set on the root of the rendered page
// whenever the active language changes.
type Document struct {
	Lang string    `json:"lang"`
	Dir  Direction `json:"dir"`
}

// StartRequest starts the conversation, optionally switching language.
type StartRequest struct {
	Language string `json:"language" validate:"omitempty,max=16"`
}

// LanguageRequest applies a language chosen in the switcher.
type LanguageRequest struct {
	Language string `json:"language" validate:"required,max=16"`
}

// ChatRequest represents a message sent by the user, either typed text or
// one of the quick replies.
type ChatRequest struct {
	Content    string `json:"content" validate:"max=4000"`
	QuickReply string `json:"quick_reply" validate:"omitempty,max=64"`
}

// ChatResponse is returned after a message was accepted.  SuggestedLanguage
// is set when the message looks like it was written in another known
// language than the active one.
type ChatResponse struct {
	Messages          []Message `json:"messages"`
	SuggestedLanguage string    `json:"suggested_language,omitempty"`
}

// ResetRequest clears the conversation.  Confirm must be true; the server
// answers with the confirmation prompt otherwise.
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

// ErrorResponse is the body of every JSON error.
type ErrorResponse struct {
	Error  string `json:"error"`
	Prompt string `json:"prompt,omitempty"`
}
