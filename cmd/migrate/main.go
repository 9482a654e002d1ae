// Package main provides the character table migration runner.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/deadmud/internal/config"
	"github.com/cory-johannsen/deadmud/internal/observability"
	"github.com/cory-johannsen/deadmud/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	source := flag.String("source", "file://migrations", "migration source URL")
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of steps (0 = all)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	n := *steps
	switch *direction {
	case "up":
	case "down":
		n = -n
	default:
		logger.Fatal("invalid direction, must be up or down", zap.String("direction", *direction))
	}

	res, err := postgres.Migrate(*source, cfg.Database.DSN(), n, *direction == "down")
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	fields := []zap.Field{
		zap.Uint("version", res.Version),
		zap.Bool("dirty", res.Dirty),
		zap.Duration("elapsed", time.Since(start)),
	}
	if !res.Changed {
		logger.Info("no changes", fields...)
		return
	}
	logger.Info("migrated", append(fields, zap.String("direction", *direction))...)
}
