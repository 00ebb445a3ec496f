package input

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles a Prompter renders with.
type Theme struct {
	Prompt lipgloss.Style
	Hint   lipgloss.Style
	Error  lipgloss.Style
	Echo   lipgloss.Style
}

// DefaultTheme returns the cyan/gray/red theme bound to r. Pass a renderer
// built on the prompter's writer so colors are dropped for non-terminals.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Theme{
		Prompt: base.Foreground(lipgloss.Color("cyan")).Bold(true),
		Hint:   base.Foreground(lipgloss.Color("240")),
		Error:  base.Foreground(lipgloss.Color("red")),
		Echo:   base.Foreground(lipgloss.Color("240")),
	}
}

// PlainTheme returns a theme that writes text unchanged.
func PlainTheme() Theme {
	base := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Theme{Prompt: base, Hint: base, Error: base, Echo: base}
}

// render styles each line of s on its own. lipgloss pads multi-line blocks
// to a common width, which would alter messages like "\n\tEnter a string: ".
func render(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
