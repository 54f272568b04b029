// Package command runs the interactive loop: it reads an action, looks it
// up in a registry and lets the command talk to the user through the
// console.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jeanpaul/flashcards/internal/cli"
	"github.com/jeanpaul/flashcards/internal/console"
	"github.com/jeanpaul/flashcards/internal/deck"
	"github.com/jeanpaul/flashcards/internal/quiz"
	"github.com/jeanpaul/flashcards/internal/sessionlog"
	"github.com/jeanpaul/flashcards/internal/storage"
)

const (
	ActionPrompt = "Input the action (add, remove, import, export, ask, exit, log, hardest card, reset stats):"
	Goodbye      = "Bye Bye!"

	msgArgs        = "There was an error involved in your command line import/export of a file, please try again.\n"
	msgNotFound    = "File not found.\n"
	msgReadFailed  = "There was an error in loading your file. Please ensure it is not open in another program.\n"
	msgDenied      = "Access was denied in writing to the file. Please ensure it is not set to read only, or open in another program.\n"
	msgWriteFailed = "There was an error in writing your file, please try again.\n"
)

// errExit ends the loop.
var errExit = errors.New("exit")

// Session is one run of the program: the deck, the transcript and the
// console they are driven through.
type Session struct {
	deck       *deck.Deck
	log        *sessionlog.Log
	console    *console.Console
	quiz       *quiz.Engine
	logger     *slog.Logger
	commands   *Registry
	exportPath string
}

// NewSession wires a session around con. log must be the sink con records
// into, so the "log" command can save it.
func NewSession(con *console.Console, log *sessionlog.Log, src quiz.Source, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := deck.New()
	s := &Session{
		deck:     d,
		log:      log,
		console:  con,
		quiz:     quiz.New(d, src),
		logger:   logger,
		commands: NewRegistry(),
	}
	RegisterDefaults(s.commands)
	return s
}

func (s *Session) Deck() *deck.Deck { return s.deck }

func (s *Session) Commands() *Registry { return s.commands }

// ExportPath is the file the deck is written to when the session finishes.
func (s *Session) ExportPath() string { return s.exportPath }

// ApplyArgs handles the command line. Malformed arguments produce a single
// warning and are otherwise ignored.
func (s *Session) ApplyArgs(args []string) {
	if len(args) == 0 {
		return
	}
	opts, err := cli.Parse(args)
	if err != nil {
		s.logger.Warn("ignoring command line", "args", args, "error", err)
		s.console.Warn(msgArgs)
		return
	}
	if opts.ImportPath != "" {
		s.Import(opts.ImportPath)
	}
	s.exportPath = opts.ExportPath
}

// Run prompts for actions until "exit", end of input or ctx is done.
// Unknown actions are ignored.
func (s *Session) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		line, err := s.console.Ask(ActionPrompt)
		if err != nil {
			return quiet(err)
		}
		cmd, ok := s.commands.Get(line)
		if !ok {
			s.logger.Debug("unknown action", "input", line)
			continue
		}
		if err := cmd.Run(ctx, s); err != nil {
			return quiet(err)
		}
	}
	return nil
}

// Finish says goodbye and flushes the deck to the -export file, if any.
func (s *Session) Finish() {
	s.console.Farewell(Goodbye)
	if s.exportPath != "" {
		s.Export(s.exportPath)
	}
}

func quiet(err error) error {
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Import merges the cards stored at path into the deck. Known terms are
// overwritten; a card whose definition belongs to another term is skipped.
func (s *Session) Import(path string) {
	cards, err := storage.Load(path)
	if err != nil {
		s.logger.Warn("import failed", "path", path, "error", err)
		if errors.Is(err, storage.ErrNotFound) {
			s.console.Warn(msgNotFound)
		} else {
			s.console.Warn(msgReadFailed)
		}
		return
	}

	n := 0
	for _, c := range cards {
		if err := s.deck.Upsert(c); err != nil {
			s.logger.Warn("skipping imported card", "path", path, "term", c.Term, "error", err)
			continue
		}
		n++
	}
	s.logger.Info("cards imported", "path", path, "count", n, "read", len(cards))
	s.console.Say(fmt.Sprintf("%d cards have been loaded\n", n))
}

// Export writes the whole deck to path.
func (s *Session) Export(path string) {
	if err := storage.Save(path, s.deck.Cards()); err != nil {
		s.reportWrite(path, err)
		return
	}
	s.logger.Info("cards exported", "path", path, "count", s.deck.Len())
	s.console.Say(fmt.Sprintf("%d cards have been saved.\n", s.deck.Len()))
}

// SaveLog writes the transcript so far to path.
func (s *Session) SaveLog(path string) {
	if err := storage.SaveLines(path, s.log.Entries()); err != nil {
		s.reportWrite(path, err)
		return
	}
	s.logger.Info("log saved", "path", path, "entries", s.log.Len())
	s.console.Say("The log has been saved.\n")
}

func (s *Session) reportWrite(path string, err error) {
	s.logger.Warn("write failed", "path", path, "error", err)
	if errors.Is(err, storage.ErrWriteDenied) {
		s.console.Warn(msgDenied)
	} else {
		s.console.Warn(msgWriteFailed)
	}
}
