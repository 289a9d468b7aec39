// Package session holds the conversation state of one device: the selected
// language, whether onboarding is done, and the message history.  All
// changes go through the named operations of Store, each of which persists
// the affected field right away.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"health-chat/internal/core"
	"health-chat/internal/i18n"
	"health-chat/pkg"
)

// Persisted keys.  Each field is stored on its own.
const (
	keyLanguage = "languageCode"
	keyStarted  = "started"
	keyMessages = "messages"
)

// DefaultReplyDelay is how long a simulated reply takes.
const DefaultReplyDelay = 900 * time.Millisecond

const (
	replyTimeout   = 30 * time.Second
	persistTimeout = 5 * time.Second
)

// KV is the storage a Store persists into.  kv.Namespace satisfies it.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Responder generates the assistant's reply.  history ends with the user
// message being answered.
type Responder interface {
	Reply(ctx context.Context, lang string, history []pkg.Message) (string, error)
}

// Options configures a Store.  Zero values get defaults.
type Options struct {
	ReplyDelay time.Duration
	Scheduler  Scheduler
	Responder  Responder
	Log        *slog.Logger
	Now        func() time.Time
	NewID      func() string
}

func (o Options) withDefaults() Options {
	if o.ReplyDelay <= 0 {
		o.ReplyDelay = DefaultReplyDelay
	}
	if o.Scheduler == nil {
		o.Scheduler = RealScheduler{}
	}
	if o.Log == nil {
		o.Log = slog.Default()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Responder == nil {
		o.Responder = core.NewChatService(nil, o.Log)
	}
	return o
}

// pendingReply is a scheduled reply, keyed by its placeholder id.
type pendingReply struct {
	timer  Timer
	cancel context.CancelFunc
}

// Store is the session of one device.  It is safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	kv   KV
	opts Options
	log  *slog.Logger

	language string
	started  bool
	messages []pkg.Message

	pending    map[string]*pendingReply
	subs       map[int]chan Event
	nextSub    int
	closed     bool
	lastActive time.Time
}

// New returns a Store with default state.  Call Load to rehydrate it.
func New(store KV, opts Options) *Store {
	opts = opts.withDefaults()
	return &Store{
		kv:         store,
		opts:       opts,
		log:        opts.Log,
		language:   i18n.DefaultLanguage,
		pending:    make(map[string]*pendingReply),
		subs:       make(map[int]chan Event),
		lastActive: opts.Now(),
	}
}

// Load rehydrates the session from storage.  initialLanguage is used when
// no language was persisted yet.  Unreadable or malformed values are
// replaced by defaults; Load never fails.
func (s *Store) Load(ctx context.Context, initialLanguage string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.language = i18n.Normalize(initialLanguage)
	if v, ok := s.read(ctx, keyLanguage); ok {
		if i18n.IsKnown(v) {
			s.language = v
		} else {
			s.log.Warn("Ignoring unknown persisted language", "language", v)
		}
	} else {
		s.persistLanguage(ctx)
	}

	s.started = false
	if v, ok := s.read(ctx, keyStarted); ok {
		s.started = v == "true"
	}

	s.messages = nil
	if v, ok := s.read(ctx, keyMessages); ok {
		var msgs []pkg.Message
		if err := json.Unmarshal([]byte(v), &msgs); err != nil {
			s.log.Warn("Discarding malformed persisted messages", "error", err)
		} else {
			// Placeholders from a previous process have no timer behind them.
			for _, m := range msgs {
				if !m.IsPlaceholder() {
					s.messages = append(s.messages, m)
				}
			}
		}
	}
	s.touch()
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn("Failed to read session state, using default", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

// SetLanguage switches the active language.  Unknown codes fall back to
// the default language.  The new document attributes are published with
// the language event.
func (s *Store) SetLanguage(ctx context.Context, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLanguageLocked(ctx, code)
}

func (s *Store) setLanguageLocked(ctx context.Context, code string) {
	s.touch()
	code = i18n.Normalize(code)
	if code == s.language {
		return
	}
	s.language = code
	s.persistLanguage(ctx)
	s.publish(EventLanguage)
}

// Start ends onboarding.  A non-empty code different from the active
// language switches to it first.  When the conversation is empty it is
// seeded with the disclaimer of the effective language; never twice.
func (s *Store) Start(ctx context.Context, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if code != "" && code != s.language {
		s.setLanguageLocked(ctx, code)
	}
	if !s.started {
		s.started = true
		s.persistStarted(ctx)
	}
	if len(s.messages) == 0 {
		s.messages = append(s.messages, pkg.Message{
			ID:        s.opts.NewID(),
			Role:      pkg.RoleAssistant,
			Content:   i18n.Resolve(s.language).Disclaimer,
			Timestamp: s.opts.Now(),
		})
		s.persistMessages(ctx)
	}
	s.publish(EventStarted)
}

// SendUserMessage appends the trimmed text as a user message followed by a
// typing placeholder, and schedules the reply that will replace that
// placeholder.  Blank text is ignored and nil is returned.  It does not wait
// for the reply.
func (s *Store) SendUserMessage(ctx context.Context, text string) []pkg.Message {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.touch()

	now := s.opts.Now()
	user := pkg.Message{ID: s.opts.NewID(), Role: pkg.RoleUser, Content: trimmed, Timestamp: now}
	placeholder := pkg.Message{ID: pkg.TypingIDPrefix + s.opts.NewID(), Role: pkg.RoleTyping, Timestamp: now}
	s.messages = append(s.messages, user, placeholder)
	s.persistMessages(ctx)

	history := make([]pkg.Message, 0, len(s.messages))
	for _, m := range s.messages {
		if !m.IsPlaceholder() {
			history = append(history, m)
		}
	}
	s.schedule(placeholder.ID, s.language, history)
	s.publish(EventMessages)

	return []pkg.Message{user, placeholder}
}

func (s *Store) schedule(id, lang string, history []pkg.Message) {
	replyCtx, cancel := context.WithCancel(context.Background())
	p := &pendingReply{cancel: cancel}
	s.pending[id] = p
	p.timer = s.opts.Scheduler.AfterFunc(s.opts.ReplyDelay, func() {
		s.completeReply(replyCtx, id, lang, history)
	})
}

// completeReply generates the reply for placeholder id and puts it in the
// placeholder's place.  Replies whose placeholder is no longer pending were
// cancelled and are dropped.
func (s *Store) completeReply(ctx context.Context, id, lang string, history []pkg.Message) {
	s.mu.Lock()
	_, ok := s.pending[id]
	s.mu.Unlock()
	if !ok {
		return
	}

	replyCtx, cancel := context.WithTimeout(ctx, replyTimeout)
	content, err := s.opts.Responder.Reply(replyCtx, lang, history)
	cancel()
	if err != nil {
		s.log.Warn("Reply generation failed", "placeholder", id, "error", err)
	}
	if content == "" {
		content = core.Canned(lang)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[id]
	if !ok {
		return
	}
	p.cancel()
	delete(s.pending, id)

	reply := pkg.Message{ID: s.opts.NewID(), Role: pkg.RoleAssistant, Content: content, Timestamp: s.opts.Now()}
	replaced := false
	for i, m := range s.messages {
		if m.ID == id {
			s.messages[i] = reply
			replaced = true
			break
		}
	}
	if !replaced {
		s.messages = append(s.messages, reply)
	}

	persistCtx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	s.persistMessages(persistCtx)
	s.publish(EventMessages)
}

// Reset clears the conversation and returns to onboarding.  Pending replies
// are cancelled so none lands after the reset.  The language is kept.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.cancelPendingLocked()
	s.messages = nil
	s.started = false
	s.persistMessages(ctx)
	s.persistStarted(ctx)
	s.publish(EventReset)
}

// StartOver asks confirm with the localized confirmation prompt and resets
// only on a yes.  It reports whether the reset happened.
func (s *Store) StartOver(ctx context.Context, confirm func(prompt string) bool) bool {
	if confirm == nil || !confirm(s.ConfirmPrompt()) {
		return false
	}
	s.Reset(ctx)
	return true
}

// ConfirmPrompt is the question asked before a reset, in the active language.
func (s *Store) ConfirmPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return i18n.Resolve(s.language).ConfirmStartOver
}

func (s *Store) cancelPendingLocked() {
	for id, p := range s.pending {
		p.timer.Stop()
		p.cancel()
		delete(s.pending, id)
	}
}

// Close cancels pending replies and ends all subscriptions.  The store
// accepts no new messages afterwards.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancelPendingLocked()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// Language returns the active language code.
func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// Started reports whether onboarding is done.
func (s *Store) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Messages returns a copy of the history.
func (s *Store) Messages() []pkg.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]pkg.Message(nil), s.messages...)
}

// Pending returns the number of replies not yet delivered.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Snapshot returns the state and its rendering attributes.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	msgs := append([]pkg.Message{}, s.messages...)
	return Snapshot{
		Language: s.language,
		Started:  s.started,
		Messages: msgs,
		Pending:  len(s.pending),
		Document: i18n.DocumentFor(s.language),
		Strings:  i18n.Resolve(s.language),
	}
}

// idleSince reports whether the store has been untouched since t and has
// nothing in flight.
func (s *Store) idleSince(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive.Before(t) && len(s.pending) == 0 && len(s.subs) == 0
}

func (s *Store) touch() { s.lastActive = s.opts.Now() }

// markActive touches the store from outside its own operations.
func (s *Store) markActive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
}

func (s *Store) persistLanguage(ctx context.Context) {
	s.write(ctx, keyLanguage, s.language)
}

func (s *Store) persistStarted(ctx context.Context) {
	s.write(ctx, keyStarted, strconv.FormatBool(s.started))
}

func (s *Store) persistMessages(ctx context.Context) {
	msgs := s.messages
	if msgs == nil {
		msgs = []pkg.Message{}
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		s.log.Error("Failed to encode messages", "error", err)
		return
	}
	s.write(ctx, keyMessages, string(data))
}

// write persists one field.  Failures are logged; the in-memory state
// stays authoritative.
func (s *Store) write(ctx context.Context, key, value string) {
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.log.Warn("Failed to persist session state", "key", key, "error", err)
	}
}
