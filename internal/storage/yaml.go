package storage

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/flashcards/internal/deck"
)

// YAML stores a deck as a sequence of {term, definition, mistakes} maps.
type YAML struct{}

func (YAML) Decode(r io.Reader) ([]deck.Card, error) {
	var cards []deck.Card
	if err := yaml.NewDecoder(r).Decode(&cards); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for i, c := range cards {
		if c.Mistakes < 0 {
			return nil, fmt.Errorf("%w: card %d: negative mistake count", ErrMalformed, i+1)
		}
	}
	return cards, nil
}

func (YAML) Encode(w io.Writer, cards []deck.Card) error {
	if cards == nil {
		cards = []deck.Card{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cards); err != nil {
		return err
	}
	return enc.Close()
}
