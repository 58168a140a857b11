package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os/signal"
	"syscall"

	"foodorder/internal/pkg/config"
	"foodorder/internal/pkg/dotenv"
	"foodorder/internal/pkg/migrations"
	"foodorder/internal/pkg/postgres"
	"foodorder/pkg/logger"
	"foodorder/pkg/logger/zap_adapter"
)

// Использование: migrate [up|down], по умолчанию up.
func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var log logger.Logger = zapLogger

	if err := dotenv.Load(); err != nil {
		log.Error("failed to load .env file", logger.NewField("error", err))
		return
	}

	direction := flag.Arg(0)
	if direction == "" {
		direction = "up"
	}

	if err := run(context.Background(), log, direction); err != nil {
		log.Error("migration failed",
			logger.NewField("direction", direction),
			logger.NewField("error", err),
		)
		return
	}
	log.Info("migration finished", logger.NewField("direction", direction))
}

func run(ctx context.Context, log logger.Logger, direction string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	dbConfig, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, dbConfig)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	switch direction {
	case "up":
		return migrations.Up(ctx, log, pool)
	case "down":
		return migrations.Down(ctx, log, pool)
	default:
		return fmt.Errorf("unknown direction %q, expected up or down", direction)
	}
}
