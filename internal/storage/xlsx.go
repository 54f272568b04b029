package storage

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/flashcards/internal/deck"
)

// XLSX keeps one card per row on the first sheet: A term, B definition,
// C mistakes. There is no header row.
type XLSX struct{}

func (XLSX) Decode(r io.Reader) ([]deck.Card, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", ErrMalformed, sheets[0], err)
	}

	var cards []deck.Card
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if len(row) < 2 || len(row) > 3 {
			return nil, fmt.Errorf("%w: row %d: want 2 or 3 cells, got %d", ErrMalformed, i+1, len(row))
		}
		c := deck.Card{Term: row[0], Definition: row[1]}
		if len(row) == 3 && strings.TrimSpace(row[2]) != "" {
			m, err := strconv.Atoi(strings.TrimSpace(row[2]))
			if err != nil || m < 0 {
				return nil, fmt.Errorf("%w: row %d: bad mistake count %q", ErrMalformed, i+1, row[2])
			}
			c.Mistakes = m
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func (XLSX) Encode(w io.Writer, cards []deck.Card) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, c := range cards {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{c.Term, c.Definition, c.Mistakes}); err != nil {
			return err
		}
	}
	return f.Write(w)
}
