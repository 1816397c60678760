package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/shade/internal/theme"
)

func newTestModel(t *testing.T, hook func(theme.Mode) error) (model, *theme.Store) {
	t.Helper()
	store, err := theme.NewStore(theme.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	bridge := newRepaintBridge(store)
	store.SetRepaintTarget(bridge)
	t.Cleanup(bridge.Close)

	return newModel(Config{Store: store, OnModeChange: hook}, bridge), store
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleKeyRepaintsThroughStore(t *testing.T) {
	var saved []theme.Mode
	m, store := newTestModel(t, func(mode theme.Mode) error {
		saved = append(saved, mode)
		return nil
	})
	require.Equal(t, theme.Light, m.styles.Mode)

	updated, cmd := m.Update(keyMsg("t"))
	m = updated.(model)
	require.Equal(t, theme.Dark, store.ActiveMode())
	require.NotNil(t, cmd)

	msg := cmd().(ModeChangedMsg)
	require.NoError(t, msg.Err)
	require.Equal(t, []theme.Mode{theme.Dark}, saved)

	repaint := m.bridge.Wait()()
	require.Equal(t, RepaintMsg{Mode: theme.Dark}, repaint)

	updated, next := m.Update(repaint)
	m = updated.(model)
	require.Equal(t, theme.Dark, m.styles.Mode)
	require.Equal(t, 1, m.repaints)
	require.Contains(t, m.status, "dark mode")
	require.NotNil(t, next)
}

func TestRepaintBridgeCoalesces(t *testing.T) {
	_, store := newTestModel(t, nil)
	bridge := store.RepaintTarget().(*repaintBridge)

	store.OnModeToggled(true)
	store.OnModeToggled(false)
	store.OnModeToggled(true)

	require.Equal(t, RepaintMsg{Mode: theme.Dark}, bridge.Wait()())

	done := make(chan tea.Msg, 1)
	go func() { done <- bridge.Wait()() }()
	select {
	case <-done:
		t.Fatal("expected a single coalesced repaint")
	case <-time.After(50 * time.Millisecond):
	}
	bridge.Close()
	require.Nil(t, <-done)
}

func TestModeChangedErrorShowsStatus(t *testing.T) {
	m, _ := newTestModel(t, nil)

	updated, _ := m.Update(ModeChangedMsg{Mode: theme.Dark, Err: errors.New("disk full")})
	m = updated.(model)
	require.Contains(t, m.View(), "disk full")
}

func TestSwapAndResetKeys(t *testing.T) {
	m, store := newTestModel(t, nil)
	require.NoError(t, store.SetColor(theme.Light, theme.FillPrimary, theme.RGB(1, 1, 1)))

	updated, _ := m.Update(keyMsg("r"))
	m = updated.(model)
	require.True(t, store.Palette(theme.Light).Equal(theme.DefaultPalette(theme.Light)))

	updated, _ = m.Update(keyMsg("s"))
	m = updated.(model)
	require.True(t, store.Palette(theme.Light).Equal(theme.DefaultPalette(theme.Dark)))
	require.Contains(t, m.View(), "Swapped")
}

func TestViewListsRolesAndHandlesSmallTerminal(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	for _, k := range theme.Keys() {
		require.True(t, strings.Contains(view, k.String()), "missing %s", k)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = updated.(model)
	require.Contains(t, m.View(), "Terminal too small")
}

func TestCursorBounds(t *testing.T) {
	m, _ := newTestModel(t, nil)

	updated, _ := m.Update(keyMsg("k"))
	m = updated.(model)
	require.Equal(t, 0, m.cursor)

	for i := 0; i < 20; i++ {
		updated, _ = m.Update(keyMsg("j"))
		m = updated.(model)
	}
	require.Equal(t, len(theme.Keys())-1, m.cursor)
}

func TestRunWithConfigRequiresStore(t *testing.T) {
	require.Error(t, RunWithConfig(Config{}))
}
