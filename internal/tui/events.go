package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/shade/internal/theme"
)

// RepaintMsg asks the model to rebuild its styles from the store.
type RepaintMsg struct {
	Mode theme.Mode
}

// repaintBridge is the store's repaint target while the TUI runs. Repaint
// never blocks; bursts of repaints collapse into one pending message.
type repaintBridge struct {
	store   *theme.Store
	pending chan struct{}

	closeOnce sync.Once
	done      chan struct{}
}

func newRepaintBridge(store *theme.Store) *repaintBridge {
	return &repaintBridge{
		store:   store,
		pending: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Repaint implements theme.Repainter.
func (b *repaintBridge) Repaint() {
	select {
	case b.pending <- struct{}{}:
	default:
	}
}

// Close stops the wait command.
func (b *repaintBridge) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

// Wait returns a tea.Cmd that blocks until the next repaint request.
func (b *repaintBridge) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.pending:
			return RepaintMsg{Mode: b.store.ActiveMode()}
		case <-b.done:
			return nil
		}
	}
}

// ModeChangedMsg reports a persisted mode change result.
type ModeChangedMsg struct {
	Mode theme.Mode
	Err  error
}

func persistMode(hook func(theme.Mode) error, mode theme.Mode) tea.Cmd {
	if hook == nil {
		return nil
	}
	return func() tea.Msg {
		return ModeChangedMsg{Mode: mode, Err: hook(mode)}
	}
}
