package session

import (
	"health-chat/internal/i18n"
	"health-chat/pkg"
)

// EventType names what changed in a session.
type EventType string

const (
	EventLanguage EventType = "language"
	EventStarted  EventType = "started"
	EventMessages EventType = "messages"
	EventReset    EventType = "reset"
)

// Event is published after every change, carrying the state right after it.
type Event struct {
	Type     EventType `json:"type"`
	Snapshot Snapshot  `json:"snapshot"`
}

// Snapshot is a copy of the session state together with what the view
// needs to render it.
type Snapshot struct {
	Language string        `json:"languageCode"`
	Started  bool          `json:"started"`
	Messages []pkg.Message `json:"messages"`
	Pending  int           `json:"pending"`
	Document pkg.Document  `json:"document"`
	Strings  i18n.Bundle   `json:"strings"`
}

const subscriberBuffer = 16

// publish hands ev to every subscriber without blocking.  A subscriber that
// is too slow misses events; the next one carries the full state anyway.
// Callers hold s.mu.
func (s *Store) publish(t EventType) {
	if len(s.subs) == 0 {
		return
	}
	ev := Event{Type: t, Snapshot: s.snapshotLocked()}
	for id, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			s.log.Debug("Dropping session event for slow subscriber", "subscriber", id, "type", t)
		}
	}
}

// Subscribe returns a channel of change events and a function that ends the
// subscription.  The channel is closed when the subscription ends or the
// store is closed.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}
