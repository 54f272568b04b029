package main

import (
	"context"
	"io"
	"os"

	"github.com/jeanpaul/flashcards/internal/command"
	"github.com/jeanpaul/flashcards/internal/config"
	"github.com/jeanpaul/flashcards/internal/console"
	"github.com/jeanpaul/flashcards/internal/logging"
	"github.com/jeanpaul/flashcards/internal/quiz"
	"github.com/jeanpaul/flashcards/internal/sessionlog"
)

func main() {
	cfg, err := config.Load()
	run(context.Background(), cfg, err, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// run drives one session. A broken config is reported and replaced by the
// defaults; the program always ends normally.
func run(ctx context.Context, cfg *config.Config, cfgErr error, args []string, stdin io.Reader, stdout, stderr io.Writer) {
	if cfgErr != nil || cfg == nil {
		cfg = config.DefaultConfig()
	}

	transcript := sessionlog.New()
	logger := logging.New(cfg.Log, stderr, transcript.ID())
	if cfgErr != nil {
		logger.Warn("using default configuration", "error", cfgErr)
	}

	con := console.New(stdin, stdout, transcript, console.ThemeFor(cfg.Theme))
	s := command.NewSession(con, transcript, quiz.NewSource(cfg.Quiz.Seed), logger)

	s.ApplyArgs(args)
	if err := s.Run(ctx); err != nil {
		logger.Error("input failed", "error", err)
	}
	s.Finish()
}
