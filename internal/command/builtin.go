package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jeanpaul/flashcards/internal/deck"
)

// RegisterDefaults registers every interactive action.
func RegisterDefaults(r *Registry) {
	r.Register(NewFunc("add", addCard))
	r.Register(NewFunc("remove", removeCard))
	r.Register(NewFunc("import", importCards))
	r.Register(NewFunc("export", exportCards))
	r.Register(NewFunc("ask", ask))
	r.Register(NewFunc("exit", exit))
	r.Register(NewFunc("log", saveLog))
	r.Register(NewFunc("hardest card", hardestCard))
	r.Register(NewFunc("reset stats", resetStats))
}

func addCard(_ context.Context, s *Session) error {
	term, err := s.console.Ask("The card:")
	if err != nil {
		return err
	}
	if s.deck.HasTerm(term) {
		s.console.Say(fmt.Sprintf("The card \"%s\" already exists.\n", term))
		return nil
	}

	definition, err := s.console.Ask("The definition of the card:")
	if err != nil {
		return err
	}
	if s.deck.HasDefinition(definition) {
		s.console.Say(fmt.Sprintf("The definition \"%s\" already exists.\n", definition))
		return nil
	}

	if err := s.deck.Add(term, definition, 0); err != nil {
		return err
	}
	s.console.Say(fmt.Sprintf("The pair (\"%s\":\"%s\") has been added.\n", term, definition))
	return nil
}

func removeCard(_ context.Context, s *Session) error {
	term, err := s.console.Ask("Which card:")
	if err != nil {
		return err
	}
	if err := s.deck.Remove(term); err != nil {
		if errors.Is(err, deck.ErrNotFound) {
			s.console.Say(fmt.Sprintf("Can't remove \"%s\": there is no such card.\n", term))
			return nil
		}
		return err
	}
	s.console.Say("The card has been removed.\n")
	return nil
}

func askFileName(s *Session) (string, error) {
	return s.console.Ask("File name:")
}

func importCards(_ context.Context, s *Session) error {
	path, err := askFileName(s)
	if err != nil {
		return err
	}
	s.Import(path)
	return nil
}

func exportCards(_ context.Context, s *Session) error {
	path, err := askFileName(s)
	if err != nil {
		return err
	}
	s.Export(path)
	return nil
}

func saveLog(_ context.Context, s *Session) error {
	path, err := askFileName(s)
	if err != nil {
		return err
	}
	s.SaveLog(path)
	return nil
}

func ask(_ context.Context, s *Session) error {
	if s.deck.Len() == 0 {
		s.console.Say("No questions stored to ask.\n")
		return nil
	}
	attempts, err := s.console.AskNumber("How many times to ask?")
	if err != nil {
		return err
	}
	return s.quiz.Run(attempts, s.console)
}

func exit(context.Context, *Session) error {
	return errExit
}

func hardestCard(_ context.Context, s *Session) error {
	s.console.Say(hardestMessage(s.deck))
	return nil
}

func hardestMessage(d *deck.Deck) string {
	idx := d.Hardest()
	if len(idx) == 0 {
		return "There are no cards with errors.\n"
	}
	most := d.At(idx[0]).Mistakes
	if len(idx) == 1 {
		return fmt.Sprintf("The hardest card is \"%s\". You have %d errors answering it.\n", d.At(idx[0]).Term, most)
	}

	quoted := make([]string, len(idx))
	for i, j := range idx {
		quoted[i] = "\"" + d.At(j).Term + "\""
	}
	return fmt.Sprintf("The hardest cards are %s. You have %d errors answering them.\n", strings.Join(quoted, ", "), most)
}

func resetStats(_ context.Context, s *Session) error {
	s.deck.ResetStats()
	s.console.Say("Card statistics have been reset.\n")
	return nil
}
