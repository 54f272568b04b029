package deck

import (
	"errors"
	"fmt"
)

var (
	ErrTermExists       = errors.New("term already exists")
	ErrDefinitionExists = errors.New("definition already exists")
	ErrNotFound         = errors.New("card not found")
	ErrIndexOutOfRange  = errors.New("card index out of range")
	ErrNegativeMistakes = errors.New("mistake count cannot be negative")
)

// Card is a term/definition pair plus the number of times it was missed
// since the last reset.
type Card struct {
	Term       string `yaml:"term"`
	Definition string `yaml:"definition"`
	Mistakes   int    `yaml:"mistakes"`
}

// Deck is an ordered set of cards. Terms are unique and so are definitions.
// Insertion order is preserved and indices are stable until a removal.
type Deck struct {
	cards []Card
}

func New() *Deck {
	return &Deck{}
}

func (d *Deck) Len() int { return len(d.cards) }

// At returns the card at index i. It panics on a bad index like a slice does.
func (d *Deck) At(i int) Card { return d.cards[i] }

// Cards returns a copy of the cards in deck order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) IndexOfTerm(term string) int {
	for i, c := range d.cards {
		if c.Term == term {
			return i
		}
	}
	return -1
}

func (d *Deck) IndexOfDefinition(definition string) int {
	for i, c := range d.cards {
		if c.Definition == definition {
			return i
		}
	}
	return -1
}

func (d *Deck) HasTerm(term string) bool { return d.IndexOfTerm(term) >= 0 }

func (d *Deck) HasDefinition(definition string) bool {
	return d.IndexOfDefinition(definition) >= 0
}

// Add appends a new card. The deck is left untouched if the term or the
// definition is already present.
func (d *Deck) Add(term, definition string, mistakes int) error {
	if mistakes < 0 {
		return ErrNegativeMistakes
	}
	if d.HasTerm(term) {
		return fmt.Errorf("add %q: %w", term, ErrTermExists)
	}
	if d.HasDefinition(definition) {
		return fmt.Errorf("add %q: %w", definition, ErrDefinitionExists)
	}
	d.cards = append(d.cards, Card{Term: term, Definition: definition, Mistakes: mistakes})
	return nil
}

// Remove deletes the card with the given term.
func (d *Deck) Remove(term string) error {
	i := d.IndexOfTerm(term)
	if i < 0 {
		return fmt.Errorf("remove %q: %w", term, ErrNotFound)
	}
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return nil
}

// Overwrite replaces the definition and mistake count of an existing term.
func (d *Deck) Overwrite(term, definition string, mistakes int) error {
	if mistakes < 0 {
		return ErrNegativeMistakes
	}
	i := d.IndexOfTerm(term)
	if i < 0 {
		return fmt.Errorf("overwrite %q: %w", term, ErrNotFound)
	}
	if j := d.IndexOfDefinition(definition); j >= 0 && j != i {
		return fmt.Errorf("overwrite %q: %w", term, ErrDefinitionExists)
	}
	d.cards[i].Definition = definition
	d.cards[i].Mistakes = mistakes
	return nil
}

// Upsert overwrites c.Term if it is already in the deck and adds it
// otherwise.
func (d *Deck) Upsert(c Card) error {
	if d.HasTerm(c.Term) {
		return d.Overwrite(c.Term, c.Definition, c.Mistakes)
	}
	return d.Add(c.Term, c.Definition, c.Mistakes)
}

// RecordMistake increments the mistake count of the card at index i.
func (d *Deck) RecordMistake(i int) error {
	if i < 0 || i >= len(d.cards) {
		return fmt.Errorf("record mistake at %d: %w", i, ErrIndexOutOfRange)
	}
	d.cards[i].Mistakes++
	return nil
}

func (d *Deck) ResetStats() {
	for i := range d.cards {
		d.cards[i].Mistakes = 0
	}
}

// Hardest returns the indices of every card tied at the highest mistake
// count, in deck order. It returns nil when no card has been missed.
func (d *Deck) Hardest() []int {
	most := 0
	for _, c := range d.cards {
		if c.Mistakes > most {
			most = c.Mistakes
		}
	}
	if most == 0 {
		return nil
	}
	var idx []int
	for i, c := range d.cards {
		if c.Mistakes == most {
			idx = append(idx, i)
		}
	}
	return idx
}
