package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color value.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// ARGB builds a color from a packed 0xAARRGGBB value.
func ARGB(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ParseColor(value string) (Color, error) {
	raw := strings.TrimSpace(value)
	if !strings.HasPrefix(raw, "#") {
		raw = "#" + raw
	}

	if !isHex(raw[1:]) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}

	alpha := uint8(0xff)
	switch len(raw) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(raw[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
		}
		alpha = uint8(a)
		raw = raw[:7]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}

	c, err := colorful.Hex(raw)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ARGB returns the packed 0xAARRGGBB value.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Hex renders the color as "#RRGGBB", or "#RRGGBBAA" when not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Blend mixes c toward other in Lab space. t is clamped to [0, 1]; alpha is
// interpolated linearly.
func (c Color) Blend(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	mixed := c.colorful().BlendLab(other.colorful(), t).Clamped()
	r, g, b := mixed.RGB255()
	a := float64(c.A) + (float64(other.A)-float64(c.A))*t
	return Color{R: r, G: g, B: b, A: uint8(a + 0.5)}
}

// Luminance returns the perceptual lightness (CIE L*) in [0, 1].
func (c Color) Luminance() float64 {
	l, _, _ := c.colorful().Lab()
	return l
}

// IsDark reports whether the color reads as dark.
func (c Color) IsDark() bool {
	return c.Luminance() < 0.5
}
