package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/shade/internal/theme"
)

func init() {
	rootCmd.AddCommand(modeCmd)
}

var modeCmd = &cobra.Command{
	Use:       "mode [light|dark|toggle]",
	Short:     "Show or change the active mode",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		if len(args) == 1 {
			switch strings.ToLower(strings.TrimSpace(args[0])) {
			case "toggle":
				s.store.ToggleActiveMode()
			default:
				mode, err := theme.ParseMode(args[0])
				if err != nil {
					return err
				}
				s.store.SetActiveMode(mode)
			}
			if err := s.prefs.SaveMode(cmd.Context(), s.store.ActiveMode()); err != nil {
				return err
			}
		}

		mode := s.store.ActiveMode()
		if IsJSONOutput() {
			return writeJSON(cmd.OutOrStdout(), map[string]string{"mode": mode.String()})
		}
		fmt.Fprintln(cmd.OutOrStdout(), mode)
		return nil
	},
}
