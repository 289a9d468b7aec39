package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-chat/internal/config"
	"health-chat/internal/core"
	httpserver "health-chat/internal/http"
	"health-chat/internal/kv"
	"health-chat/internal/llm"
	"health-chat/internal/logging"
	"health-chat/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := logging.Init(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		logger.Warn("Falling back to stdout logging", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	store, err := kv.Open(openCtx, kv.Options{
		Driver:      cfg.StorageDriver,
		Path:        cfg.StoragePath,
		DatabaseURL: cfg.DatabaseURL,
	})
	cancel()
	if err != nil {
		logger.Error("Failed to open storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("Failed to close storage", "error", closeErr)
		}
	}()
	if err := store.Ping(ctx); err != nil {
		logger.Error("Storage health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Storage ready", "driver", cfg.StorageDriver)

	// Replies are canned unless an OpenAI key is configured.
	chat := core.NewChatService(nil, logger)
	if cfg.AIEnabled() {
		chat = core.NewChatService(llm.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIChatModel), logger)
		logger.Info("AI replies enabled", "model", cfg.OpenAIChatModel)
	}

	sessions := session.NewManager(store, session.Options{
		ReplyDelay: cfg.ReplyDelay,
		Responder:  chat,
		Log:        logger,
	})
	defer sessions.Close()
	sessions.StartSweeper(ctx, cfg.SweepInterval, cfg.SessionIdle)

	handler, err := httpserver.NewServer(sessions, httpserver.Options{
		AllowedOrigins: cfg.Origins(),
		CookieSecure:   cfg.CookieSecure,
		Log:            logger,
	})
	if err != nil {
		logger.Error("Failed to construct server", "error", err)
		os.Exit(1)
	}

	// No WriteTimeout: the event stream stays open.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	// Closing the sessions ends open event streams so Shutdown can finish.
	srv.RegisterOnShutdown(sessions.Close)

	go func() {
		logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
