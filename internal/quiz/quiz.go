// Package quiz asks the user for the definitions of random cards and keeps
// the mistake counts of a deck up to date.
package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jeanpaul/flashcards/internal/deck"
)

// ErrEmptyDeck is returned by Run when there is nothing to ask.
var ErrEmptyDeck = errors.New("no cards to ask")

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns the default source. A non-zero seed makes the sequence
// reproducible.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Picker chooses the next card to show, never the same one twice in a row
// unless the deck has a single card.
type Picker struct {
	src  Source
	last int
}

func NewPicker(src Source) *Picker {
	return &Picker{src: src, last: -1}
}

// Next returns an index in [0, count). count must be positive.
func (p *Picker) Next(count int) int {
	i := 0
	if count > 1 {
		i = p.last
		for i == p.last {
			i = p.src.IntN(count)
		}
	}
	p.last = i
	return i
}

// Last is the index returned by the previous Next, or -1.
func (p *Picker) Last() int { return p.last }

type Verdict int

const (
	Correct Verdict = iota
	Wrong
	WrongOtherTerm
)

// Outcome is the result of one answer.
type Outcome struct {
	Verdict Verdict
	// Answer is the asked card's definition.
	Answer string
	// OtherTerm is set for WrongOtherTerm: the card the given answer belongs to.
	OtherTerm string
}

// Message is the feedback line shown to the user.
func (o Outcome) Message() string {
	switch o.Verdict {
	case Correct:
		return "Correct!"
	case WrongOtherTerm:
		return fmt.Sprintf("Wrong. The right answer is \"%s\", but your definition is correct for \"%s\".", o.Answer, o.OtherTerm)
	default:
		return fmt.Sprintf("Wrong. The right answer is \"%s\".", o.Answer)
	}
}

// Prompter shows a line and returns the user's reply.
type Prompter interface {
	Ask(prompt string) (string, error)
	Say(msg string)
}

// Engine runs quizzes over a deck.
type Engine struct {
	deck *deck.Deck
	src  Source
}

func New(d *deck.Deck, src Source) *Engine {
	return &Engine{deck: d, src: src}
}

// Check compares answer with the definition of the card at index and records
// a mistake on that card when they differ.
func (e *Engine) Check(index int, answer string) (Outcome, error) {
	if index < 0 || index >= e.deck.Len() {
		return Outcome{}, fmt.Errorf("check card %d: %w", index, deck.ErrIndexOutOfRange)
	}
	asked := e.deck.At(index)
	if answer == asked.Definition {
		return Outcome{Verdict: Correct, Answer: asked.Definition}, nil
	}

	out := Outcome{Verdict: Wrong, Answer: asked.Definition}
	if j := e.deck.IndexOfDefinition(answer); j >= 0 {
		out.Verdict = WrongOtherTerm
		out.OtherTerm = e.deck.At(j).Term
	}
	if err := e.deck.RecordMistake(index); err != nil {
		return Outcome{}, err
	}
	return out, nil
}

// Run asks attempts questions, reporting each outcome as soon as the answer
// arrives. A blank line follows the last question. Each run starts with no
// previously shown card.
func (e *Engine) Run(attempts int, p Prompter) error {
	if e.deck.Len() == 0 {
		return ErrEmptyDeck
	}
	picker := NewPicker(e.src)
	for n := 0; n < attempts; n++ {
		i := picker.Next(e.deck.Len())
		answer, err := p.Ask(fmt.Sprintf("Print the definition of \"%s\":", e.deck.At(i).Term))
		if err != nil {
			return err
		}
		out, err := e.Check(i, answer)
		if err != nil {
			return err
		}
		p.Say(out.Message())
	}
	p.Say("")
	return nil
}
