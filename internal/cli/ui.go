package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/shade/internal/theme"
	"github.com/opencode-ai/shade/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the palette preview",
	Long:  "Launch an interactive preview of the active palette. Press t to toggle dark mode.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func runTUI(ctx context.Context) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use CLI subcommands",
			NextStep: "shade show",
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	return tui.RunWithConfig(tui.Config{
		Store: s.store,
		OnModeChange: func(mode theme.Mode) error {
			return s.prefs.SaveMode(ctx, mode)
		},
	})
}
