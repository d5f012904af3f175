package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/radix-engine/backend/internal/api"
	"github.com/radix-engine/backend/internal/config"
	"github.com/radix-engine/backend/internal/corpus"
	"github.com/radix-engine/backend/internal/engine"
	"github.com/radix-engine/backend/internal/politeness"
	"github.com/radix-engine/backend/internal/storage"
)

func main() {
	// 1. Config
	cfg := config.Load()

	// 2. Logging
	logger := newLogger(cfg.Log)
	entry := logger.WithField("service", "radix-api")
	entry.Info("Starting Radix API Service")

	// 3. Storage
	fs, err := storage.NewFileStorage(cfg.Corpus.DataDir)
	if err != nil {
		entry.Fatalf("Failed to initialize storage: %v", err)
	}

	// 4. Corpus store (memory)
	store := corpus.NewStore(fs, cfg.Corpus, entry.WithField("component", "corpus"))
	if cfg.Corpus.Preload {
		store.Warm()
	}

	// 5. Engine
	eng := engine.NewEngine(cfg, entry, store)

	// 6. API Server
	robots, err := politeness.NewRobotsPolicy(cfg.Robots, entry.WithField("component", "robots"))
	if err != nil {
		entry.Fatalf("Failed to build robots policy: %v", err)
	}
	server := api.NewServer(eng, robots, entry)

	done := make(chan struct{})
	go func() {
		defer close(done)
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		sig := <-stop
		entry.WithField("signal", sig.String()).Info("Shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			entry.WithError(err).Error("Graceful shutdown failed")
		}
	}()

	if err := server.Start(cfg.Server.Addr); err != nil {
		entry.Fatal(err)
	}
	<-done
	entry.Info("Server stopped")
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.WithField("level", cfg.Level).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
