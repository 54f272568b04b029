package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jeanpaul/flashcards/internal/deck"
)

// Delimiter separates the fields of a card line. It is not escaped, so a
// term or definition containing it will not survive a round trip.
const Delimiter = "@:#:%"

const maxLineSize = 1024 * 1024

// Text is the line format: term@:#:%definition@:#:%mistakes.
type Text struct{}

func (Text) Decode(r io.Reader) ([]deck.Card, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var cards []deck.Card
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		c, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		cards = append(cards, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

func (Text) Encode(w io.Writer, cards []deck.Card) error {
	bw := bufio.NewWriter(w)
	for _, c := range cards {
		if _, err := bw.WriteString(FormatLine(c) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatLine renders c without a trailing newline.
func FormatLine(c deck.Card) string {
	return c.Term + Delimiter + c.Definition + Delimiter + strconv.Itoa(c.Mistakes)
}

// ParseLine is the inverse of FormatLine.
func ParseLine(line string) (deck.Card, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != 3 {
		return deck.Card{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformed, len(fields))
	}
	m, err := strconv.Atoi(fields[2])
	if err != nil || m < 0 {
		return deck.Card{}, fmt.Errorf("%w: bad mistake count %q", ErrMalformed, fields[2])
	}
	return deck.Card{Term: fields[0], Definition: fields[1], Mistakes: m}, nil
}
