// Package cli implements the shade command line.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/shade/internal/config"
	"github.com/opencode-ai/shade/internal/db"
	"github.com/opencode-ai/shade/internal/logging"
	"github.com/opencode-ai/shade/internal/theme"
)

var (
	configFile     string
	logLevel       string
	logFormat      string
	databasePath   string
	jsonOutput     bool
	nonInteractive bool

	appConfig *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/shade/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, json)")
	rootCmd.PersistentFlags().StringVar(&databasePath, "db", "", "preferences database path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")
}

var rootCmd = &cobra.Command{
	Use:           "shade",
	Short:         "Manage dark and light color palettes",
	Long:          "shade keeps a dark and a light palette, tracks which one is active, and persists your overrides.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if logFormat != "" {
			cfg.Logging.Format = logFormat
		}
		if databasePath != "" {
			cfg.Database.Path = databasePath
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := logging.Init(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: cmd.ErrOrStderr(),
		}); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
		appConfig = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the loaded configuration, or nil before the root
// command has run.
func GetConfig() *config.Config {
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// PreflightError is a user-facing failure with a hint.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\nhint: ")
		b.WriteString(e.Hint)
	}
	if e.NextStep != "" {
		b.WriteString("\nnext: ")
		b.WriteString(e.NextStep)
	}
	return b.String()
}

func openDatabase(ctx context.Context) (*db.DB, error) {
	cfg := GetConfig()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if _, err := database.MigrateUp(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// session bundles the store with the preferences it was restored from.
type session struct {
	store *theme.Store
	prefs *db.PreferenceRepository
	db    *db.DB
}

func (s *session) Close() error {
	return s.db.Close()
}

// openSession builds a store from config defaults, the configured palette
// file, and saved preferences, in that order.
func openSession(ctx context.Context) (*session, error) {
	cfg := GetConfig()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	store, err := theme.NewStore(
		theme.WithMode(cfg.Mode()),
		theme.WithLogger(logging.Component("theme")),
	)
	if err != nil {
		return nil, err
	}

	if path := strings.TrimSpace(cfg.Theme.PaletteFile); path != "" {
		file, err := theme.LoadPaletteFile(path)
		if err != nil {
			return nil, err
		}
		if err := file.Apply(store); err != nil {
			return nil, fmt.Errorf("apply palette %s: %w", path, err)
		}
	}

	database, err := openDatabase(ctx)
	if err != nil {
		return nil, err
	}
	prefs := db.NewPreferenceRepository(database)
	if err := prefs.Restore(ctx, store); err != nil {
		database.Close()
		return nil, fmt.Errorf("restore preferences: %w", err)
	}

	logger := logging.Component("cli")
	logger.Debug().
		Str("mode", store.ActiveMode().String()).
		Str("db", cfg.Database.Path).
		Msg("session opened")

	return &session{store: store, prefs: prefs, db: database}, nil
}

// resolveMode parses a --mode flag value; empty means the active mode.
func resolveMode(value string, store *theme.Store) (theme.Mode, error) {
	if strings.TrimSpace(value) == "" {
		return store.ActiveMode(), nil
	}
	return theme.ParseMode(value)
}
