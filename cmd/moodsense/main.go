// Mood Sense terminal journaling client.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ashureev/mood-sense/internal/config"
	"github.com/ashureev/mood-sense/internal/journal"
	"github.com/ashureev/mood-sense/internal/logger"
	"github.com/ashureev/mood-sense/internal/store"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	cfg, err := config.LoadClient()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so they do not interleave with journal output.
	log := logger.NewWithWriter(os.Stderr, cfg.Log)
	slog.SetDefault(log)

	kv, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		log.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := kv.Close(); closeErr != nil {
			log.Error("Failed to close store", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := kv.Ping(ctx); err != nil {
		log.Error("Database health check failed", "error", err)
		os.Exit(1)
	}

	con := newConsole(os.Stdout, os.Stderr)
	app := journal.NewApp(
		journal.NewKVRepository(kv),
		journal.NewRelayClient(cfg.RelayURL, nil),
		journal.WithNotifier(con),
		journal.WithLogger(log),
	)

	log.Debug("Starting journal", "relay_url", cfg.RelayURL, "db_path", cfg.DBPath)
	newREPL(app, con).Run(ctx, os.Stdin)
}
