package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"notekeep/internal/annotator"
	"notekeep/internal/notes"
	"notekeep/internal/server"
	"notekeep/internal/storage"
	"notekeep/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize storage
	var kv storage.KV
	switch cfg.Storage.Backend {
	case "memory":
		logger.Info("Using in-memory storage")
		kv = storage.NewMemoryKV()
	case "postgres":
		logger.Info("Using PostgreSQL storage")
		kv, err = storage.NewPostgresKV(storage.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	default:
		logger.Info("Using file storage", zap.String("dir", cfg.Storage.DataDir))
		kv, err = storage.NewFileKV(cfg.Storage.DataDir)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer kv.Close()

	// Initialize the note service and seed on first run
	svc := notes.NewService(storage.NewNoteStore(kv, logger), logger)
	loaded := svc.Initialize()
	logger.Info("Notes loaded", zap.Int("count", len(loaded)))

	// Initialize the annotator: LLM-backed when a key is configured,
	// offline keyword heuristics otherwise.
	var ann annotator.Annotator
	if cfg.AI.APIKey != "" {
		ann = annotator.NewLLMAnnotator(
			cfg.AI.APIKey,
			cfg.AI.BaseURL,
			cfg.AI.Model,
			cfg.AI.MaxTokens,
			cfg.AI.MaxTags,
			logger,
		)
	} else {
		logger.Info("No AI API key configured, using keyword annotator")
		ann = annotator.NewKeywordAnnotator(cfg.AI.MaxTags)
	}

	handler := server.NewHandler(svc, storage.NewSessionStore(kv, logger), ann, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", zap.Error(err))
		}
	}()

	logger.Info("Server starting", zap.String("addr", cfg.Server.Addr))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("Server error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
