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

	"project_reports/internal/config"
	"project_reports/internal/database"
	"project_reports/internal/logging"
	"project_reports/internal/server"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.App.Name, cfg.App.LogLevel)
	if !envLoaded {
		logger.Debug("no .env file found, using environment variables")
	}

	db, err := database.Connect(cfg.Database, logger.Named("database"))
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg, db, logger)

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(fmt.Sprintf("http server error: %s", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("closing database", "error", err)
	}
	logger.Info("server exiting")
}
