package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/flashcards/internal/sessionlog"
)

func newConsole(input string) (*Console, *bytes.Buffer, *sessionlog.Log) {
	var out bytes.Buffer
	log := sessionlog.New()
	return New(strings.NewReader(input), &out, log, PlainTheme), &out, log
}

func TestAsk(t *testing.T) {
	c, out, log := newConsole("France\r\nParis\n")

	term, err := c.Ask("The card:")
	require.NoError(t, err)
	assert.Equal(t, "France", term)

	def, err := c.Ask("The definition of the card:")
	require.NoError(t, err)
	assert.Equal(t, "Paris", def)

	assert.Equal(t, "The card:\nThe definition of the card:\n", out.String())
	assert.Equal(t, []string{"The card:", "France", "The definition of the card:", "Paris"}, log.Entries())
}

func TestAsk_EOF(t *testing.T) {
	c, _, log := newConsole("")

	_, err := c.Ask("Input the action:")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"Input the action:"}, log.Entries())
}

func TestAsk_KeepsEmptyAndSpacedReplies(t *testing.T) {
	c, _, _ := newConsole("\n  two words \n")

	r, err := c.Ask("a")
	require.NoError(t, err)
	assert.Equal(t, "", r)

	r, err = c.Ask("b")
	require.NoError(t, err)
	assert.Equal(t, "  two words ", r)
}

func TestAskNumber(t *testing.T) {
	c, out, log := newConsole("many\nthree\n3\n")

	n, err := c.AskNumber("How many times to ask?")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t,
		"How many times to ask?\n"+
			"many was not a number, please try again: \n"+
			"three was not a number, please try again: \n",
		out.String())
	assert.Equal(t, 6, log.Len())
}

func TestAskNumber_EOF(t *testing.T) {
	c, _, _ := newConsole("x\n")

	_, err := c.AskNumber("How many times to ask?")
	assert.ErrorIs(t, err, io.EOF)
}

func TestSayAndWarnAreRecorded(t *testing.T) {
	c, out, log := newConsole("")

	c.Say("The card has been removed.\n")
	c.Warn("File not found.\n")
	c.Farewell("Bye Bye!")

	assert.Equal(t, "The card has been removed.\n\nFile not found.\n\nBye Bye!\n", out.String())
	assert.Equal(t, []string{"The card has been removed.\n", "File not found.\n"}, log.Entries())
}

func TestNew_NilSink(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("x\n"), &out, nil, PlainTheme)

	r, err := c.Ask("q")
	require.NoError(t, err)
	assert.Equal(t, "x", r)
}

func TestThemeFor(t *testing.T) {
	assert.True(t, ThemeFor("GREEN").styled)
	assert.False(t, ThemeFor("plain").styled)
	assert.False(t, ThemeFor("unknown").styled)
}

func TestPaint_KeepsLineStructure(t *testing.T) {
	got := GreenTheme.paint(GreenTheme.Message, "a\n\nbcd\n")
	assert.Equal(t, 4, len(strings.Split(got, "\n")))
	assert.True(t, strings.HasSuffix(got, "\n"))
	assert.Contains(t, got, "bcd")
}
