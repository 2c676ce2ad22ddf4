// ABOUTME: Style is the per-session display configuration: prompt prefix, symbol, and lipgloss styles.
// ABOUTME: Passed by value into the renderer; replaces any process-global display state.

package render

import "github.com/charmbracelet/lipgloss"

// Style holds the prompt's prefix and symbol plus the styles applied to
// them and to editor messages. One Style is built at startup and handed
// to the renderer; nothing here is global.
type Style struct {
	Prefix string
	Symbol string

	PrefixStyle lipgloss.Style
	SymbolStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HintStyle   lipgloss.Style
	AccentStyle lipgloss.Style
}

// NewStyle returns the default styling for the given prefix and symbol:
// plain prefix, green symbol, red error marker, dim hints.
func NewStyle(prefix, symbol string) Style {
	return Style{
		Prefix:  prefix,
		Symbol:  symbol,
		PrefixStyle: lipgloss.NewStyle(),
		SymbolStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		ErrorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		HintStyle:   lipgloss.NewStyle().Faint(true),
		AccentStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// PromptText returns the rendered prefix+symbol string.
func (s Style) PromptText() string {
	return s.PrefixStyle.Render(s.Prefix) + s.SymbolStyle.Render(s.Symbol)
}

// PromptPlain returns the prompt without styling, for width computation.
func (s Style) PromptPlain() string {
	return s.Prefix + s.Symbol
}
