// Package tui implements the shade palette preview.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/shade/internal/theme"
	"github.com/opencode-ai/shade/internal/tui/components"
	"github.com/opencode-ai/shade/internal/tui/styles"
)

// Config wires the preview to a store.
type Config struct {
	// Store is required.
	Store *theme.Store

	// OnModeChange persists a user toggle. Optional.
	OnModeChange func(theme.Mode) error
}

// RunWithConfig launches the preview program and blocks until it exits.
// The store's repaint target is replaced for the duration of the run and
// restored afterwards.
func RunWithConfig(cfg Config) error {
	if cfg.Store == nil {
		return errors.New("theme store is required")
	}

	bridge := newRepaintBridge(cfg.Store)
	previous := cfg.Store.RepaintTarget()
	cfg.Store.SetRepaintTarget(bridge)
	defer func() {
		cfg.Store.SetRepaintTarget(previous)
		bridge.Close()
	}()

	program := tea.NewProgram(newModel(cfg, bridge), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	store    *theme.Store
	bridge   *repaintBridge
	onMode   func(theme.Mode) error
	styles   styles.Styles
	cursor   int
	repaints int
	status   string
	width    int
	height   int
}

const (
	minWidth  = 40
	minHeight = 14
)

func newModel(cfg Config, bridge *repaintBridge) model {
	return model{
		store:  cfg.Store,
		bridge: bridge,
		onMode: cfg.OnModeChange,
		styles: styles.FromStore(cfg.Store),
	}
}

func (m model) Init() tea.Cmd {
	return m.bridge.Wait()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "t", " ":
			m.store.OnModeToggled(!m.store.IsDark())
			return m, persistMode(m.onMode, m.store.ActiveMode())
		case "s":
			m.store.Swap()
			m.styles = styles.FromStore(m.store)
			m.status = "Swapped dark and light palettes."
		case "r":
			m.store.Reset(m.store.ActiveMode())
			m.styles = styles.FromStore(m.store)
			m.status = fmt.Sprintf("Reset %s palette.", m.store.ActiveMode())
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(theme.Keys())-1 {
				m.cursor++
			}
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case RepaintMsg:
		m.styles = styles.FromStore(m.store)
		m.repaints++
		m.status = fmt.Sprintf("Switched to %s mode.", msg.Mode)
		return m, m.bridge.Wait()
	case ModeChangedMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("Failed to save mode: %v", msg.Err)
		} else {
			m.status = fmt.Sprintf("Saved %s mode.", msg.Mode)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return strings.Join([]string{
			m.styles.Muted.Render(fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)),
			m.styles.Muted.Render(fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)),
		}, "\n") + "\n"
	}

	key := theme.ColorKey(m.cursor)
	table := components.PaletteTable{
		Palette:   m.styles.Palette,
		Highlight: &key,
	}

	lines := []string{
		m.styles.Title.Render("shade") + "  " + components.RenderModeBadge(m.styles, m.styles.Mode),
		"",
		m.styles.Panel.Render(table.Render(m.styles)),
		"",
	}
	if m.status != "" {
		lines = append(lines, m.styles.Fill.Render(m.status), "")
	}
	lines = append(lines, m.styles.Muted.Render("Shortcuts: t toggle | s swap | r reset | j/k move | q quit"))

	return strings.Join(lines, "\n") + "\n"
}
