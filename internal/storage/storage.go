// Package storage reads and writes card files. The codec is picked from the
// file extension: .yaml/.yml and .xlsx have their own formats, anything else
// is the delimited text format.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jeanpaul/flashcards/internal/deck"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrRead        = errors.New("cannot read file")
	ErrMalformed   = errors.New("malformed card data")
	ErrWriteDenied = errors.New("write access denied")
	ErrWrite       = errors.New("cannot write file")
)

// Codec converts a whole card file to and from cards.
type Codec interface {
	Decode(r io.Reader) ([]deck.Card, error)
	Encode(w io.Writer, cards []deck.Card) error
}

// CodecFor returns the codec used for path.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML{}
	case ".xlsx":
		return XLSX{}
	default:
		return Text{}
	}
}

// Load reads every card stored at path. A path containing glob
// metacharacters that does not name an existing file is expanded, and the
// matches are read in lexical order as one batch. Either all files decode or
// nothing is returned.
func Load(path string) ([]deck.Card, error) {
	paths, err := expand(path)
	if err != nil {
		return nil, err
	}

	var cards []deck.Card
	for _, p := range paths {
		cs, err := loadFile(p)
		if err != nil {
			return nil, err
		}
		cards = append(cards, cs...)
	}
	return cards, nil
}

func expand(path string) ([]string, error) {
	if !strings.ContainsAny(path, "*?[{") {
		return []string{path}, nil
	}
	if _, err := os.Stat(path); err == nil {
		return []string{path}, nil
	}

	matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: bad pattern %q: %v", ErrRead, path, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no match for %q", ErrNotFound, path)
	}
	sort.Strings(matches)
	return matches, nil
}

func loadFile(path string) ([]deck.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, readError(path, err)
	}
	defer f.Close()

	cards, err := CodecFor(path).Decode(f)
	if err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, readError(path, err)
	}
	return cards, nil
}

// Save replaces the contents of path with cards.
func Save(path string, cards []deck.Card) error {
	var buf bytes.Buffer
	if err := CodecFor(path).Encode(&buf, cards); err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrWrite, path, err)
	}
	return writeFile(path, buf.Bytes())
}

// SaveLines replaces the contents of path with lines, one per line.
func SaveLines(path string, lines []string) error {
	var buf bytes.Buffer
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s: %v", ErrWriteDenied, path, err)
		}
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

func readError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return fmt.Errorf("%w: %s: %v", ErrRead, path, err)
}
