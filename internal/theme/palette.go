package theme

// Palette maps every color role to a concrete color for one mode.
type Palette map[ColorKey]Color

// defaultDarkPalette is the built-in dark table. Callers get copies via
// DefaultPalette.
var defaultDarkPalette = Palette{
	TextPrimary:         ARGB(0xffffffff),
	TextInverted:        ARGB(0xff303030),
	TextSecondary:       ARGB(0xff7f7f7f),
	ForegroundPrimary:   ARGB(0xffffffff),
	BackgroundPrimary:   ARGB(0xff303030),
	BackgroundSecondary: ARGB(0xff101010),
	FillPrimary:         ARGB(0xffff20a0),
	FillSecondary:       ARGB(0xffffffff),
	ScopeBackground:     ARGB(0xff101010),
}

// defaultLightPalette is the built-in light table.
var defaultLightPalette = Palette{
	TextPrimary:         ARGB(0xff000000),
	TextInverted:        ARGB(0xfffefefe),
	TextSecondary:       ARGB(0xff7f7f7f),
	ForegroundPrimary:   ARGB(0xff000000),
	BackgroundPrimary:   ARGB(0xfffefefe),
	BackgroundSecondary: ARGB(0xffeeeeee),
	FillPrimary:         ARGB(0xffff20a0),
	FillSecondary:       ARGB(0xffaaaaaa),
	ScopeBackground:     ARGB(0xff202020),
}

// DefaultPalette returns a copy of the built-in table for mode.
func DefaultPalette(mode Mode) Palette {
	if mode == Dark {
		return defaultDarkPalette.Clone()
	}
	return defaultLightPalette.Clone()
}

// Clone returns an independent copy. A nil palette clones to nil.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	for k, c := range p {
		out[k] = c
	}
	return out
}

// Validate checks that every declared role is present. Keys outside the
// declared set are rejected too.
func (p Palette) Validate(mode Mode) error {
	for k := range p {
		if !k.Valid() {
			return &unknownKeyError{key: k}
		}
	}
	for _, k := range Keys() {
		if _, ok := p[k]; !ok {
			return &MissingKeyError{Mode: mode, Key: k}
		}
	}
	return nil
}

// Merge returns a copy of p with entries from overrides applied on top.
func (p Palette) Merge(overrides Palette) Palette {
	out := p.Clone()
	if out == nil {
		out = make(Palette, len(overrides))
	}
	for k, c := range overrides {
		out[k] = c
	}
	return out
}

// Equal reports whether both palettes hold the same entries.
func (p Palette) Equal(other Palette) bool {
	if len(p) != len(other) {
		return false
	}
	for k, c := range p {
		if oc, ok := other[k]; !ok || oc != c {
			return false
		}
	}
	return true
}

type unknownKeyError struct {
	key ColorKey
}

func (e *unknownKeyError) Error() string {
	return ErrUnknownColorKey.Error() + ": " + e.key.String()
}

func (e *unknownKeyError) Unwrap() error {
	return ErrUnknownColorKey
}
