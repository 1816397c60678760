// Package styles derives lipgloss styles from a theme palette.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/shade/internal/theme"
)

// Styles contains lipgloss styles derived from a palette.
type Styles struct {
	Mode     theme.Mode
	Palette  theme.Palette
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Inverted lipgloss.Style
	Panel    lipgloss.Style
	Border   lipgloss.Style
	Accent   lipgloss.Style
	Fill     lipgloss.Style
	Scope    lipgloss.Style
}

// DefaultStyles builds styles from the built-in light palette.
func DefaultStyles() Styles {
	return BuildStyles(theme.Light, theme.DefaultPalette(theme.Light))
}

// FromStore builds styles from the store's live palette.
func FromStore(store *theme.Store) Styles {
	mode := store.ActiveMode()
	return BuildStyles(mode, store.Palette(mode))
}

// BuildStyles converts palette roles into lipgloss styles. Missing roles
// fall back to the built-in palette for mode.
func BuildStyles(mode theme.Mode, palette theme.Palette) Styles {
	p := theme.DefaultPalette(mode).Merge(palette)
	border := p[theme.BackgroundPrimary].Blend(p[theme.TextSecondary], 0.5)

	return Styles{
		Mode:     mode,
		Palette:  p,
		Title:    lipgloss.NewStyle().Foreground(Color(p[theme.TextPrimary])).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(Color(p[theme.TextPrimary])),
		Muted:    lipgloss.NewStyle().Foreground(Color(p[theme.TextSecondary])),
		Inverted: lipgloss.NewStyle().Foreground(Color(p[theme.TextInverted])).Background(Color(p[theme.ForegroundPrimary])),
		Panel:    lipgloss.NewStyle().Foreground(Color(p[theme.TextPrimary])).Background(Color(p[theme.BackgroundSecondary])).BorderStyle(lipgloss.NormalBorder()).BorderForeground(Color(border)),
		Border:   lipgloss.NewStyle().Foreground(Color(border)),
		Accent:   lipgloss.NewStyle().Foreground(Color(p[theme.FillPrimary])).Bold(true),
		Fill:     lipgloss.NewStyle().Foreground(Color(p[theme.FillSecondary])),
		Scope:    lipgloss.NewStyle().Foreground(Color(p[theme.FillPrimary])).Background(Color(p[theme.ScopeBackground])),
	}
}

// Color converts a theme color to a lipgloss color. Terminals have no alpha,
// so translucent colors are composited over black.
func Color(c theme.Color) lipgloss.Color {
	if c.A != 0xff {
		c = theme.RGB(0, 0, 0).Blend(theme.RGB(c.R, c.G, c.B), float64(c.A)/255.0)
	}
	return lipgloss.Color(c.Hex())
}

// Swatch renders a block of the given color.
func Swatch(c theme.Color, width int) string {
	if width <= 0 {
		width = 2
	}
	return lipgloss.NewStyle().Background(Color(c)).Render(strings.Repeat(" ", width))
}
