package command

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Command is one interactive action.
type Command interface {
	Name() string
	Run(ctx context.Context, s *Session) error
}

// Func adapts a plain function to Command.
type Func struct {
	name string
	run  func(ctx context.Context, s *Session) error
}

func NewFunc(name string, run func(ctx context.Context, s *Session) error) Func {
	return Func{name: name, run: run}
}

func (f Func) Name() string { return f.name }

func (f Func) Run(ctx context.Context, s *Session) error { return f.run(ctx, s) }

type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

func (r *Registry) Register(c Command) {
	r.commands[Normalize(c.Name())] = c
}

// Get looks name up after normalizing it.
func (r *Registry) Get(name string) (Command, bool) {
	c, ok := r.commands[Normalize(name)]
	return c, ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for n := range r.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Normalize lower-cases a typed command and trims surrounding blanks.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
