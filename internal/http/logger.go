package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// requestLogger formats chi request logs through slog so they share the
// configured handler and file sink.
type requestLogger struct {
	log *slog.Logger
}

func (l requestLogger) NewLogEntry(r *http.Request) chiMiddleware.LogEntry {
	return &requestLogEntry{ctx: r.Context(), log: l.log.With(
		"request_id", chiMiddleware.GetReqID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
	)}
}

type requestLogEntry struct {
	ctx context.Context
	log *slog.Logger
}

func (e *requestLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	e.log.Log(e.ctx, level, "Request served", "status", status, "bytes", bytes, "elapsed", elapsed)
}

func (e *requestLogEntry) Panic(v interface{}, stack []byte) {
	e.log.Error("Request panicked", "panic", v, "stack", string(stack))
}
