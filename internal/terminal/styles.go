package terminal

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI color names accepted by the printer, mapped to the 16-color palette
var colors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
}

// returns the lipgloss color for name, empty names yield no color
func Color(name string) (lipgloss.TerminalColor, bool) {
	if name == "" {
		return lipgloss.NoColor{}, false
	}

	c, ok := colors[name]
	if !ok {
		return lipgloss.NoColor{}, false
	}

	return c, true
}

// reports whether name is a known color
func IsColor(name string) bool {
	_, ok := colors[name]
	return ok
}

// builds a style from foreground/background names and bold/underline options
func (p *Printer) style(fg, bg string, bold, underline bool) lipgloss.Style {
	s := p.renderer.NewStyle().Bold(bold).Underline(underline)

	if c, ok := Color(fg); ok {
		s = s.Foreground(c)
	}

	if c, ok := Color(bg); ok {
		s = s.Background(c)
	}

	return s
}
