package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/andrewpaige1/studysync-api/ai"
	"github.com/andrewpaige1/studysync-api/config"
	"github.com/andrewpaige1/studysync-api/handlers"
	"github.com/andrewpaige1/studysync-api/logger"
	"github.com/andrewpaige1/studysync-api/middleware"
	"github.com/andrewpaige1/studysync-api/store"
)

func init() {
	// Load .env file if not in production environment
	if !config.IsProduction(os.Getenv) {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
		}
	}
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, config.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		return err
	}

	logMode := cfg.LogMode
	if config.IsProduction(os.Getenv) {
		logMode = "production"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closeBackend, err := config.OpenStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeBackend(); err != nil {
			log.Warn("Failed to close storage", "error", err)
		}
	}()

	studyStore := store.New(backend, store.WithKey(cfg.StorageKey), store.WithLogger(log))
	go studyStore.Load(ctx)

	var aiService ai.Service
	client, err := ai.NewClient(ai.ClientConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: time.Duration(cfg.OpenAITimeout),
	}, log)
	switch {
	case err == nil:
		aiService = client
	case errors.Is(err, ai.ErrNotConfigured):
		log.Warn("OPENAI_API_KEY not set; AI endpoints are disabled")
	default:
		return err
	}

	h := &handlers.Handler{Store: studyStore, AI: aiService, Log: log}

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(h.Routes())

	server := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           middleware.Logging(log, corsHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Listening", "addr", server.Addr, "storage", cfg.StorageDriver, "ai", aiService != nil)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
