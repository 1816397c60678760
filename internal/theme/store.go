// Package theme holds the dark and light color palettes and the active mode.
package theme

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/shade/internal/logging"
)

// Repainter is anything that can be asked to redraw itself.
type Repainter interface {
	Repaint()
}

// RepainterFunc adapts a plain function to Repainter.
type RepainterFunc func()

// Repaint calls f.
func (f RepainterFunc) Repaint() {
	f()
}

// Store guards two palettes and the active mode for concurrent use.
//
// Each palette has its own lock, so dark and light accesses never contend.
// The active mode is an atomic flag and never waits on a palette lock.
// Operations spanning both palettes lock dark before light.
type Store struct {
	active atomic.Bool

	darkMu sync.RWMutex
	dark   Palette

	lightMu sync.RWMutex
	light   Palette

	target atomic.Pointer[repaintHandle]
	logger zerolog.Logger
}

// repaintHandle boxes the interface so it can live in an atomic.Pointer.
type repaintHandle struct {
	r Repainter
}

type storeOptions struct {
	dark   Palette
	light  Palette
	mode   Mode
	target Repainter
	logger *zerolog.Logger
}

// Option configures a Store.
type Option func(*storeOptions)

// WithPalettes seeds the store with caller-supplied tables. Both must be
// complete.
func WithPalettes(dark, light Palette) Option {
	return func(o *storeOptions) {
		o.dark = dark
		o.light = light
	}
}

// WithMode sets the initial active mode. The default is Light.
func WithMode(mode Mode) Option {
	return func(o *storeOptions) {
		o.mode = mode
	}
}

// WithRepaintTarget installs the initial repaint target.
func WithRepaintTarget(r Repainter) Option {
	return func(o *storeOptions) {
		o.target = r
	}
}

// WithLogger overrides the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *storeOptions) {
		o.logger = &logger
	}
}

// NewStore builds a store from the default palettes unless WithPalettes is
// given.
func NewStore(opts ...Option) (*Store, error) {
	o := storeOptions{
		dark:  defaultDarkPalette,
		light: defaultLightPalette,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.dark.Validate(Dark); err != nil {
		return nil, err
	}
	if err := o.light.Validate(Light); err != nil {
		return nil, err
	}

	s := &Store{
		dark:  o.dark.Clone(),
		light: o.light.Clone(),
	}
	if o.logger != nil {
		s.logger = *o.logger
	} else {
		s.logger = logging.Component("theme")
	}
	s.active.Store(bool(o.mode))
	s.SetRepaintTarget(o.target)
	return s, nil
}

// SetActiveMode sets which palette is live.
func (s *Store) SetActiveMode(mode Mode) {
	s.active.Store(bool(mode))
	s.logger.Debug().Str("mode", mode.String()).Msg("theme mode set")
}

// ToggleActiveMode flips the active mode and returns the new one.
func (s *Store) ToggleActiveMode() Mode {
	for {
		old := s.active.Load()
		if s.active.CompareAndSwap(old, !old) {
			mode := Mode(!old)
			s.logger.Debug().Str("mode", mode.String()).Msg("theme mode toggled")
			return mode
		}
	}
}

// ActiveMode returns the live mode.
func (s *Store) ActiveMode() Mode {
	return Mode(s.active.Load())
}

// IsDark reports whether the dark palette is live.
func (s *Store) IsDark() bool {
	return s.active.Load()
}

func (s *Store) slot(mode Mode) (*sync.RWMutex, *Palette) {
	if mode == Dark {
		return &s.darkMu, &s.dark
	}
	return &s.lightMu, &s.light
}

// Palette returns a copy of the palette for mode.
func (s *Store) Palette(mode Mode) Palette {
	mu, p := s.slot(mode)
	mu.RLock()
	defer mu.RUnlock()
	return p.Clone()
}

// ActivePalette returns a copy of the live palette.
func (s *Store) ActivePalette() Palette {
	return s.Palette(s.ActiveMode())
}

// Palettes returns consistent copies of both palettes.
func (s *Store) Palettes() (dark, light Palette) {
	s.darkMu.RLock()
	defer s.darkMu.RUnlock()
	s.lightMu.RLock()
	defer s.lightMu.RUnlock()
	return s.dark.Clone(), s.light.Clone()
}

// SetPalette replaces the whole palette for mode. Readers see either the old
// table or the new one, never a mix. Incomplete palettes are rejected.
func (s *Store) SetPalette(mode Mode, palette Palette) error {
	if err := palette.Validate(mode); err != nil {
		return err
	}
	next := palette.Clone()

	mu, p := s.slot(mode)
	mu.Lock()
	*p = next
	mu.Unlock()
	return nil
}

// MergePalette overwrites the roles named in patch and keeps the rest. The
// merge happens under a single write lock, so concurrent SetColor calls on
// other roles are never reverted.
func (s *Store) MergePalette(mode Mode, patch Palette) error {
	for k := range patch {
		if !k.Valid() {
			return fmt.Errorf("%w: %s", ErrUnknownColorKey, k)
		}
	}
	if len(patch) == 0 {
		return nil
	}

	mu, p := s.slot(mode)
	mu.Lock()
	for k, c := range patch {
		(*p)[k] = c
	}
	mu.Unlock()
	return nil
}

// Reset restores the built-in palette for mode.
func (s *Store) Reset(mode Mode) {
	next := DefaultPalette(mode)

	mu, p := s.slot(mode)
	mu.Lock()
	*p = next
	mu.Unlock()
}

// Swap exchanges the dark and light palettes.
func (s *Store) Swap() {
	s.darkMu.Lock()
	defer s.darkMu.Unlock()
	s.lightMu.Lock()
	defer s.lightMu.Unlock()
	s.dark, s.light = s.light, s.dark
}

// Color looks up a single role in the palette for mode.
func (s *Store) Color(mode Mode, key ColorKey) (Color, error) {
	mu, p := s.slot(mode)
	mu.RLock()
	c, ok := (*p)[key]
	mu.RUnlock()
	if !ok {
		return Color{}, &MissingKeyError{Mode: mode, Key: key}
	}
	return c, nil
}

// ActiveColor looks up a role in the live palette.
func (s *Store) ActiveColor(key ColorKey) (Color, error) {
	return s.Color(s.ActiveMode(), key)
}

// SetColor overwrites a single role in the palette for mode.
func (s *Store) SetColor(mode Mode, key ColorKey, c Color) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownColorKey, key)
	}

	mu, p := s.slot(mode)
	mu.Lock()
	(*p)[key] = c
	mu.Unlock()
	return nil
}

// SetActiveColor overwrites a role in the live palette.
func (s *Store) SetActiveColor(key ColorKey, c Color) error {
	return s.SetColor(s.ActiveMode(), key, c)
}

// SetRepaintTarget installs the target notified by OnModeToggled. Passing
// nil clears it. The store does not own the target.
func (s *Store) SetRepaintTarget(r Repainter) {
	if r == nil {
		s.target.Store(nil)
		return
	}
	s.target.Store(&repaintHandle{r: r})
}

// RepaintTarget returns the installed target, or nil.
func (s *Store) RepaintTarget() Repainter {
	h := s.target.Load()
	if h == nil {
		return nil
	}
	return h.r
}

// OnModeToggled handles a user flipping the dark/light control: it sets the
// requested mode and asks the repaint target, if any, to redraw once.
func (s *Store) OnModeToggled(dark bool) {
	mode := ModeOf(dark)
	s.active.Store(dark)

	target := s.RepaintTarget()
	s.logger.Debug().
		Str("mode", mode.String()).
		Bool("repaint", target != nil).
		Msg("theme mode requested")
	if target != nil {
		target.Repaint()
	}
}
