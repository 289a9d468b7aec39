package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"health-chat/internal/session"
)

// handleEvents streams session changes as server-sent events.  The current
// snapshot is sent first, then one event per change until the client goes
// away or the session is unloaded.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		s.respondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	sess := s.session(r)
	events, stop := sess.Subscribe()
	defer stop()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, "snapshot", sess.Snapshot()); err != nil {
		s.log.Debug("Failed to send initial snapshot", "error", err)
		return
	}
	flusher.Flush()

	ticker := time.NewTicker(s.keepAlive)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, string(ev.Type), ev.Snapshot); err != nil {
				s.log.Debug("Event stream closed", "error", err)
				return
			}
			flusher.Flush()
		case <-ticker.C:
			if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case <-ctx.Done():
			return
		}
	}
}

// writeEvent writes one named SSE event with a JSON payload.
func writeEvent(w io.Writer, name string, snap session.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	return err
}
