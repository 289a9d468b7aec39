// Package compose is the state behind the message input of the chat view.
package compose

import "strings"

// QuickReplies are offered next to the text input.  They go through the
// same send path as typed text.
var QuickReplies = []string{"Yes", "No", "Not sure", "Add symptom"}

// IsQuickReply reports whether label is one of QuickReplies.
func IsQuickReply(label string) bool {
	for _, q := range QuickReplies {
		if q == label {
			return true
		}
	}
	return false
}

// Key is a key press in the input.
type Key struct {
	Name  string
	Shift bool
}

// Enter is the key name that submits.
const Enter = "Enter"

// Action is what a key press asks the view to do.
type Action int

const (
	ActionNone Action = iota
	ActionSubmit
	ActionNewline
)

// Input holds the text being typed.
type Input struct {
	text string
}

// SetText replaces the text.
func (in *Input) SetText(s string) { in.text = s }

// Text returns the raw text.
func (in *Input) Text() string { return in.text }

// CanSend reports whether the send control is enabled.
func (in *Input) CanSend() bool { return strings.TrimSpace(in.text) != "" }

// Submit returns the trimmed text and clears the input.  Blank text is
// not submitted and is left untouched.
func (in *Input) Submit() (string, bool) {
	trimmed := strings.TrimSpace(in.text)
	if trimmed == "" {
		return "", false
	}
	in.text = ""
	return trimmed, true
}

// HandleKey applies a key press.  Enter submits; Shift+Enter inserts a
// line break.  Submit on blank text does nothing.
func (in *Input) HandleKey(k Key) (Action, string) {
	if k.Name != Enter {
		return ActionNone, ""
	}
	if k.Shift {
		in.text += "\n"
		return ActionNewline, ""
	}
	text, ok := in.Submit()
	if !ok {
		return ActionNone, ""
	}
	return ActionSubmit, text
}
