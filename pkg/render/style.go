package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Style colors parts of a text report.
type Style struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Rule   lipgloss.Style
	Best   lipgloss.Style
}

// DefaultStyle returns the palette used on terminals.
func DefaultStyle() *Style {
	return &Style{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")). // Light Gray
			Bold(true),
		Rule: lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")), // Purple
		Best: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")), // Green
	}
}

// ColorMode selects when reports are styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// StyleFor returns the style to use when writing to w, or nil for plain
// output. In auto mode only terminals are styled.
func StyleFor(mode ColorMode, w io.Writer) *Style {
	switch mode {
	case ColorNever:
		return nil
	case ColorAlways:
		if lipgloss.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
		return DefaultStyle()
	default:
		if f, ok := w.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
			return DefaultStyle()
		}
		return nil
	}
}

func (s *Style) title(line string) string {
	if s == nil {
		return line
	}
	return s.Title.Render(line)
}

func (s *Style) header(line string) string {
	if s == nil {
		return line
	}
	return s.Header.Render(line)
}

func (s *Style) rule(line string) string {
	if s == nil {
		return line
	}
	return s.Rule.Render(line)
}

func (s *Style) best(line string) string {
	if s == nil {
		return line
	}
	return s.Best.Render(line)
}
