package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PaletteFile is a palette document loaded from disk. Either palette may be
// partial; missing roles keep whatever the store already holds.
type PaletteFile struct {
	Mode   *Mode
	Dark   Palette
	Light  Palette
	Source string
}

type paletteDocument struct {
	Mode  string            `yaml:"mode,omitempty"`
	Dark  map[string]string `yaml:"dark,omitempty"`
	Light map[string]string `yaml:"light,omitempty"`
}

// LoadPaletteFile reads a palette document from path.
func LoadPaletteFile(path string) (*PaletteFile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("palette path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}

	file, err := ParsePaletteFile(data)
	if err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}
	file.Source = path
	return file, nil
}

// ParsePaletteFile decodes a YAML palette document.
func ParsePaletteFile(data []byte) (*PaletteFile, error) {
	var doc paletteDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	file := &PaletteFile{}
	if strings.TrimSpace(doc.Mode) != "" {
		mode, err := ParseMode(doc.Mode)
		if err != nil {
			return nil, err
		}
		file.Mode = &mode
	}

	dark, err := decodePalette(doc.Dark)
	if err != nil {
		return nil, fmt.Errorf("dark: %w", err)
	}
	light, err := decodePalette(doc.Light)
	if err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}
	file.Dark = dark
	file.Light = light
	return file, nil
}

func decodePalette(entries map[string]string) (Palette, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make(Palette, len(entries))
	for name, value := range entries {
		key, err := ParseColorKey(name)
		if err != nil {
			return nil, err
		}
		c, err := ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[key] = c
	}
	return out, nil
}

// Apply merges the file's palettes over the store's and sets the mode when
// the file names one.
func (f *PaletteFile) Apply(s *Store) error {
	if f == nil || s == nil {
		return nil
	}
	if err := s.MergePalette(Dark, f.Dark); err != nil {
		return err
	}
	if err := s.MergePalette(Light, f.Light); err != nil {
		return err
	}
	if f.Mode != nil {
		s.SetActiveMode(*f.Mode)
	}
	return nil
}

// MarshalPaletteFile encodes both palettes and the mode as YAML.
func MarshalPaletteFile(dark, light Palette, mode Mode) ([]byte, error) {
	doc := paletteDocument{
		Mode:  mode.String(),
		Dark:  encodePalette(dark),
		Light: encodePalette(light),
	}
	return yaml.Marshal(doc)
}

// WritePaletteFile exports the store's palettes and mode to path.
func WritePaletteFile(path string, s *Store) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("palette path is required")
	}
	dark, light := s.Palettes()
	data, err := MarshalPaletteFile(dark, light, s.ActiveMode())
	if err != nil {
		return fmt.Errorf("encode palette: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create palette dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write palette %s: %w", path, err)
	}
	return nil
}

func encodePalette(p Palette) map[string]string {
	out := make(map[string]string, len(p))
	for k, c := range p {
		out[k.String()] = c.Hex()
	}
	return out
}
