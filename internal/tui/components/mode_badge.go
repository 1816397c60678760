package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/shade/internal/theme"
	"github.com/opencode-ai/shade/internal/tui/styles"
)

// RenderModeBadge renders the active mode with icon and color.
func RenderModeBadge(styleSet styles.Styles, mode theme.Mode) string {
	icon, label, style := modeDescriptor(styleSet, mode)
	return style.Render(fmt.Sprintf("%s %s", icon, label))
}

func modeDescriptor(styleSet styles.Styles, mode theme.Mode) (string, string, lipgloss.Style) {
	if mode == theme.Dark {
		return "●", "Dark", styleSet.Inverted
	}
	return "○", "Light", styleSet.Accent
}
