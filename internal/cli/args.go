// Package cli parses the command line: zero arguments, or one or two
// (flag, file) pairs where flag is -import or -export.
package cli

import (
	"errors"
	"fmt"
)

const (
	FlagImport = "-import"
	FlagExport = "-export"
)

var ErrBadArgs = errors.New("invalid command line arguments")

// Options is what the command line asked for. Empty paths mean "not given".
type Options struct {
	// ImportPath is loaded before the first prompt.
	ImportPath string
	// ExportPath receives the deck after the user exits.
	ExportPath string
}

// Parse validates args as a whole; on error nothing from args is usable.
// When a flag repeats, the last value wins.
func Parse(args []string) (Options, error) {
	var opts Options
	switch len(args) {
	case 0, 2, 4:
	default:
		return Options{}, fmt.Errorf("%w: want 0, 2 or 4 arguments, got %d", ErrBadArgs, len(args))
	}

	for i := 0; i < len(args); i += 2 {
		flag, file := args[i], args[i+1]
		switch flag {
		case FlagImport:
			opts.ImportPath = file
		case FlagExport:
			opts.ExportPath = file
		default:
			return Options{}, fmt.Errorf("%w: unknown flag %q", ErrBadArgs, flag)
		}
	}
	return opts, nil
}
