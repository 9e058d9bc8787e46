package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/PranavOaR/leaguehub/internal/api"
	"github.com/PranavOaR/leaguehub/internal/config"
	"github.com/PranavOaR/leaguehub/internal/database"
	"github.com/PranavOaR/leaguehub/internal/match"
	"github.com/PranavOaR/leaguehub/internal/player"
	"github.com/PranavOaR/leaguehub/internal/result"
	"github.com/PranavOaR/leaguehub/internal/standings"
	"github.com/PranavOaR/leaguehub/internal/team"
	"github.com/PranavOaR/leaguehub/internal/tournament"
)

func main() {
	// Optional .env for local development; real deployments use the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBPoolSize)
	cancel()
	if err != nil {
		slog.Error("cannot reach the league database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db.Pool()); err != nil {
		slog.Error("failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterDeps{
		DBPinger:    db,
		Version:     cfg.Version,
		Teams:       team.NewRepository(db.Pool()),
		Players:     player.NewRepository(db.Pool()),
		Matches:     match.NewRepository(db.Pool()),
		Tournaments: tournament.NewRepository(db.Pool()),
		Recorder:    result.NewRecorder(db.Pool()),
		Standings:   standings.NewCalculator(db.Pool()),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting league server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
