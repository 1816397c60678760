package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/shade/internal/theme"
)

type cliEnv struct {
	t      *testing.T
	dbPath string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)
	return &cliEnv{t: t, dbPath: filepath.Join(dir, "shade.db")}
}

func resetFlags() {
	configFile = ""
	logLevel = ""
	logFormat = ""
	databasePath = ""
	jsonOutput = false
	nonInteractive = false
	showMode = ""
	showFormat = "text"
	setMode = ""
	resetMode = ""
	resetAll = false
	appConfig = nil
}

func (e *cliEnv) run(args ...string) (string, error) {
	e.t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db", e.dbPath, "--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestShowDefaultsToLightPalette(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run("show")
	require.NoError(t, err)
	require.Contains(t, out, "Palette: light (active)")
	require.Contains(t, out, "background_primary")
	require.Contains(t, out, "#FEFEFE")
}

func TestModePersistsAcrossRuns(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run("mode")
	require.NoError(t, err)
	require.Equal(t, "light\n", out)

	out, err = env.run("mode", "toggle")
	require.NoError(t, err)
	require.Equal(t, "dark\n", out)

	out, err = env.run("show", "--format", "json")
	require.NoError(t, err)

	var payload paletteOutput
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Equal(t, "dark", payload.Mode)
	require.True(t, payload.Active)
	require.Equal(t, "#303030", payload.Colors["background_primary"])

	_, err = env.run("mode", "sepia")
	require.ErrorIs(t, err, theme.ErrInvalidMode)
}

func TestSetAndResetOverrides(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run("set", "fill-primary", "#112233", "--mode", "dark")
	require.NoError(t, err)
	require.Contains(t, out, "Set dark fill_primary to #112233")

	out, err = env.run("show", "--mode", "dark")
	require.NoError(t, err)
	require.Contains(t, out, "#112233")
	require.Contains(t, out, "Palette: dark\n")

	out, err = env.run("reset", "--mode", "dark")
	require.NoError(t, err)
	require.Contains(t, out, "1 overrides removed")

	out, err = env.run("show", "--mode", "dark")
	require.NoError(t, err)
	require.NotContains(t, out, "#112233")
}

func TestSetRejectsBadInput(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("set", "border", "#000000")
	require.ErrorIs(t, err, theme.ErrUnknownColorKey)

	_, err = env.run("set", "text_primary", "black")
	require.ErrorIs(t, err, theme.ErrInvalidColor)
}

func TestExportThenLoadAsPaletteFile(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("set", "scope_background", "#0A0B0C", "--mode", "light")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "palette.yaml")
	out, err := env.run("export", path)
	require.NoError(t, err)
	require.Contains(t, out, path)

	file, err := theme.LoadPaletteFile(path)
	require.NoError(t, err)
	require.Equal(t, theme.RGB(0x0a, 0x0b, 0x0c), file.Light[theme.ScopeBackground])

	config := filepath.Join(t.TempDir(), "config.yaml")
	content := "theme:\n  palette_file: " + path + "\n"
	require.NoError(t, os.WriteFile(config, []byte(content), 0o644))

	fresh := newCLIEnv(t)
	out, err = fresh.run("--config", config, "show", "--mode", "light")
	require.NoError(t, err)
	require.Contains(t, out, "#0A0B0C")
}

func TestUIRequiresInteractiveTerminal(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("--non-interactive", "ui")
	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
	require.True(t, strings.Contains(err.Error(), "shade show"))
}
