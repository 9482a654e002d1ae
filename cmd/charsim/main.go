// Package main provides charsim, a local console for creating a character,
// advancing it and issuing class commands against the game rules.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/cory-johannsen/deadmud/internal/config"
	"github.com/cory-johannsen/deadmud/internal/observability"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	name := flag.String("name", "", "character name (loaded if it exists, created otherwise)")
	class := flag.String("class", "soldier", "class of a new character (abbreviations accepted)")
	race := flag.String("race", "human", "race of a new character")
	sex := flag.String("sex", "m", "sex of a new character: n, m or f")
	level := flag.Int("level", 0, "advance the character to this level before the prompt")
	seed := flag.Uint64("seed", 0, "seed the dice for a reproducible session; 0 uses crypto randomness")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := options{
		Name:  *name,
		Class: *class,
		Race:  *race,
		Sex:   *sex,
		Level: *level,
		Seed:  *seed,
		Color: isatty.IsTerminal(os.Stdout.Fd()),
	}
	if err := run(ctx, cfg, opts, os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatal("charsim failed", zap.Error(err))
	}
}
