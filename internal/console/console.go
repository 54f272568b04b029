// Package console is the line-oriented terminal the commands talk through.
// Every line it prints and every line it reads is also recorded in the
// session log.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jeanpaul/flashcards/internal/sessionlog"
)

type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	log   sessionlog.Sink
	theme Theme
}

func New(in io.Reader, out io.Writer, log sessionlog.Sink, theme Theme) *Console {
	if log == nil {
		log = sessionlog.Discard
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), 1024*1024)
	return &Console{in: sc, out: out, log: log, theme: theme}
}

// Say prints msg followed by a newline and records it.
func (c *Console) Say(msg string) {
	c.log.Record(msg)
	fmt.Fprintln(c.out, c.theme.paint(c.theme.Message, msg))
}

// Warn is Say for error reports.
func (c *Console) Warn(msg string) {
	c.log.Record(msg)
	fmt.Fprintln(c.out, c.theme.paint(c.theme.Warning, msg))
}

// Farewell prints msg without recording it; the transcript can no longer be
// saved at that point.
func (c *Console) Farewell(msg string) {
	fmt.Fprintln(c.out, c.theme.paint(c.theme.Farewell, msg))
}

// Ask prints prompt on its own line and returns the next input line. It
// returns io.EOF once input is exhausted.
func (c *Console) Ask(prompt string) (string, error) {
	c.log.Record(prompt)
	fmt.Fprintln(c.out, c.theme.paint(c.theme.Prompt, prompt))

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimSuffix(c.in.Text(), "\r")
	c.log.Record(line)
	return line, nil
}

// AskNumber repeats the question until the reply is an integer.
func (c *Console) AskNumber(prompt string) (int, error) {
	text := prompt
	for {
		reply, err := c.Ask(text)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(reply); err == nil {
			return n, nil
		}
		text = reply + " was not a number, please try again: "
	}
}
