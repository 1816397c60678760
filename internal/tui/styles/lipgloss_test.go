package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/shade/internal/theme"
)

func TestBuildStylesUsesPaletteRoles(t *testing.T) {
	p := theme.DefaultPalette(theme.Dark)
	p[theme.FillPrimary] = theme.RGB(0x11, 0x22, 0x33)

	s := BuildStyles(theme.Dark, p)

	require.Equal(t, theme.Dark, s.Mode)
	require.Equal(t, lipgloss.Color("#112233"), s.Accent.GetForeground())
	require.Equal(t, lipgloss.Color("#FFFFFF"), s.Text.GetForeground())
	require.Equal(t, lipgloss.Color("#101010"), s.Scope.GetBackground())
}

func TestBuildStylesFillsMissingRoles(t *testing.T) {
	s := BuildStyles(theme.Light, theme.Palette{theme.TextPrimary: theme.RGB(1, 2, 3)})

	require.Len(t, s.Palette, len(theme.Keys()))
	require.Equal(t, lipgloss.Color("#010203"), s.Text.GetForeground())
	require.Equal(t, theme.DefaultPalette(theme.Light)[theme.ScopeBackground], s.Palette[theme.ScopeBackground])
}

func TestFromStoreFollowsActiveMode(t *testing.T) {
	store, err := theme.NewStore(theme.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	require.Equal(t, theme.Light, FromStore(store).Mode)

	store.SetActiveMode(theme.Dark)
	s := FromStore(store)
	require.Equal(t, theme.Dark, s.Mode)
	require.Equal(t, lipgloss.Color("#FFFFFF"), s.Text.GetForeground())
}

func TestColorCompositesAlpha(t *testing.T) {
	require.Equal(t, lipgloss.Color("#000000"), Color(theme.Color{R: 255, G: 255, B: 255, A: 0}))
	require.Equal(t, lipgloss.Color("#FF20A0"), Color(theme.ARGB(0xffff20a0)))
}

func TestSwatchWidth(t *testing.T) {
	out := Swatch(theme.RGB(0, 0, 0), 4)
	require.Contains(t, out, strings.Repeat(" ", 4))
}
