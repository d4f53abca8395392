package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"console/internal/pkg/config"
	"console/internal/pkg/postgres"
	"console/migrations"
	"console/pkg/logger"
	"console/pkg/logger/zap_adapter"

	"github.com/joho/godotenv"
)

// migrate applies the journal schema: migrate [-command up|down|version]
func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var log logger.Logger = zapLogger

	command := flag.String("command", string(postgres.MigrateUp), "up, down or version")
	flag.Parse()

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", logger.NewField("error", err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	err = postgres.Migrate(ctx, log, &cfg.Database, migrations.FS, postgres.MigrateCommand(*command))
	if err != nil {
		log.Error("migration failed",
			logger.NewField("command", *command),
			logger.NewField("error", err),
		)
		return
	}
}
