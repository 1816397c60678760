// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/shade/internal/theme"
	"github.com/opencode-ai/shade/internal/tui/styles"
)

// PaletteTable renders one row per color role with a swatch and hex value.
type PaletteTable struct {
	// Palette is the table to render. Missing roles render as "missing".
	Palette theme.Palette
	// Highlight marks a role, e.g. the one under the cursor.
	Highlight *theme.ColorKey
	// SwatchWidth defaults to 4.
	SwatchWidth int
}

// Render renders the table with the given styles.
func (t PaletteTable) Render(styleSet styles.Styles) string {
	width := t.SwatchWidth
	if width <= 0 {
		width = 4
	}

	nameWidth := 0
	for _, key := range theme.Keys() {
		if n := len(key.String()); n > nameWidth {
			nameWidth = n
		}
	}

	lines := make([]string, 0, len(theme.Keys()))
	for _, key := range theme.Keys() {
		marker := "  "
		if t.Highlight != nil && *t.Highlight == key {
			marker = styleSet.Accent.Render("> ")
		}

		name := fmt.Sprintf("%-*s", nameWidth, key.String())
		c, ok := t.Palette[key]
		if !ok {
			lines = append(lines, marker+styleSet.Muted.Render(name+"  missing"))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s%s  %s %s",
			marker,
			styleSet.Text.Render(name),
			styles.Swatch(c, width),
			styleSet.Muted.Render(c.Hex()),
		))
	}
	return strings.Join(lines, "\n")
}
