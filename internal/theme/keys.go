package theme

import (
	"fmt"
	"strings"
)

// ColorKey identifies a semantic color role.
type ColorKey int

// Color roles.
const (
	TextPrimary ColorKey = iota
	TextInverted
	TextSecondary
	ForegroundPrimary
	BackgroundPrimary
	BackgroundSecondary
	FillPrimary
	FillSecondary
	ScopeBackground

	numColorKeys
)

var colorKeyNames = [numColorKeys]string{
	TextPrimary:         "text_primary",
	TextInverted:        "text_inverted",
	TextSecondary:       "text_secondary",
	ForegroundPrimary:   "foreground_primary",
	BackgroundPrimary:   "background_primary",
	BackgroundSecondary: "background_secondary",
	FillPrimary:         "fill_primary",
	FillSecondary:       "fill_secondary",
	ScopeBackground:     "scope_background",
}

// Keys returns every color role in declaration order.
func Keys() []ColorKey {
	keys := make([]ColorKey, numColorKeys)
	for i := range keys {
		keys[i] = ColorKey(i)
	}
	return keys
}

// Valid reports whether k is one of the declared roles.
func (k ColorKey) Valid() bool {
	return k >= 0 && k < numColorKeys
}

func (k ColorKey) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ColorKey(%d)", int(k))
	}
	return colorKeyNames[k]
}

// ParseColorKey resolves a role by name. Dashes and case are normalized.
func ParseColorKey(name string) (ColorKey, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	for i, candidate := range colorKeyNames {
		if candidate == normalized {
			return ColorKey(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColorKey, name)
}

// Mode selects one of the two palettes.
type Mode bool

const (
	Light Mode = false
	Dark  Mode = true
)

// ModeOf converts a dark-mode flag into a Mode.
func ModeOf(dark bool) Mode {
	return Mode(dark)
}

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	return !m
}

// ParseMode accepts "dark" or "light".
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Light, fmt.Errorf("%w: %q", ErrInvalidMode, value)
	}
}
