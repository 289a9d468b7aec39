// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Options selects level, format and destination.  An empty File logs to
// stdout; otherwise the file is rotated.
type Options struct {
	Level  string
	Format string
	File   string
}

// Init configures slog and makes the result the default logger.
func Init(opts Options) (*slog.Logger, error) {
	handlerOptions := &slog.HandlerOptions{Level: parseLogLevel(opts.Level)}

	logPath := strings.TrimSpace(opts.File)
	if logPath == "" {
		logger := slog.New(newHandler(opts.Format, os.Stdout, handlerOptions))
		slog.SetDefault(logger)
		return logger, nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		logger := slog.New(newHandler(opts.Format, os.Stdout, handlerOptions))
		slog.SetDefault(logger)
		return logger, fmt.Errorf("create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	logger := slog.New(newHandler(opts.Format, writer, handlerOptions))
	slog.SetDefault(logger)
	return logger, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return slog.NewTextHandler(out, opts)
	default:
		return slog.NewJSONHandler(out, opts)
	}
}
