package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	Cyan        = lipgloss.Color("#00D4AA")
	White       = lipgloss.Color("#e0e0e0")
	Red         = lipgloss.Color("#FF4136")
)

// Theme holds the styles for each kind of line. The zero Theme prints text
// untouched.
type Theme struct {
	Prompt   lipgloss.Style
	Message  lipgloss.Style
	Warning  lipgloss.Style
	Farewell lipgloss.Style

	styled bool
}

var (
	GreenTheme = Theme{
		Prompt: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),
		Message: lipgloss.NewStyle().
			Foreground(White),
		Warning: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),
		Farewell: lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true),
		styled: true,
	}

	PlainTheme = Theme{}
)

// ThemeFor returns the theme named in the config; unknown names are plain.
func ThemeFor(name string) Theme {
	if strings.EqualFold(name, "green") {
		return GreenTheme
	}
	return PlainTheme
}

// paint styles each line on its own so multi-line messages are not padded
// to a common width.
func (t Theme) paint(s lipgloss.Style, text string) string {
	if !t.styled || text == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = s.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
