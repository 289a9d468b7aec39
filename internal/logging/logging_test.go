package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Init_Writes_To_File(t *testing.T) {
	req := require.New(t)
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logPath := filepath.Join(t.TempDir(), "logs", "health-chat.log")
	logger, err := Init(Options{Level: "info", Format: "json", File: logPath})
	req.NoError(err)

	logger.Info("hello", slog.String("component", "test"))
	logger.Debug("hidden")

	data, err := os.ReadFile(logPath)
	req.NoError(err)
	req.Contains(string(data), `"msg":"hello"`)
	req.NotContains(string(data), "hidden")
}

func Test_ParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}

func Test_NewHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newHandler("text", &buf, nil)).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")

	buf.Reset()
	slog.New(newHandler("", &buf, nil)).Info("structured")
	assert.Contains(t, buf.String(), `"msg":"structured"`)
}
