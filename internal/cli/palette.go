package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/shade/internal/theme"
	"github.com/opencode-ai/shade/internal/tui/styles"
)

var (
	showMode   string
	showFormat string

	setMode string

	resetMode string
	resetAll  bool
)

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)

	showCmd.Flags().StringVarP(&showMode, "mode", "m", "", "palette to show (dark, light; default active)")
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "text", "output format (text, json, yaml; yaml includes both palettes)")

	setCmd.Flags().StringVarP(&setMode, "mode", "m", "", "palette to change (dark, light; default active)")

	resetCmd.Flags().StringVarP(&resetMode, "mode", "m", "", "palette to reset (dark, light; default active)")
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "reset both palettes")
}

type paletteOutput struct {
	Mode   string            `json:"mode"`
	Active bool              `json:"active"`
	Colors map[string]string `json:"colors"`
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a palette",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		mode, err := resolveMode(showMode, s.store)
		if err != nil {
			return err
		}
		palette := s.store.Palette(mode)
		out := cmd.OutOrStdout()

		format := strings.ToLower(strings.TrimSpace(showFormat))
		if IsJSONOutput() {
			format = "json"
		}

		switch format {
		case "json":
			colors := make(map[string]string, len(palette))
			for key, c := range palette {
				colors[key.String()] = c.Hex()
			}
			return writeJSON(out, paletteOutput{
				Mode:   mode.String(),
				Active: mode == s.store.ActiveMode(),
				Colors: colors,
			})
		case "yaml":
			dark, light := s.store.Palettes()
			data, err := theme.MarshalPaletteFile(dark, light, s.store.ActiveMode())
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		case "", "text":
			label := mode.String()
			if mode == s.store.ActiveMode() {
				label += " (active)"
			}
			fmt.Fprintf(out, "Palette: %s\n\n", label)

			rows := make([][]string, 0, len(palette))
			for _, key := range theme.Keys() {
				c, err := s.store.Color(mode, key)
				if err != nil {
					return err
				}
				rows = append(rows, []string{key.String(), c.Hex(), styles.Swatch(c, 4)})
			}
			return writeTable(out, []string{"KEY", "COLOR", ""}, rows)
		default:
			return fmt.Errorf("unsupported format %q (use text, json, or yaml)", showFormat)
		}
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <color>",
	Short: "Override a single color",
	Long:  "Override a single color role and save it. Colors are #RRGGBB or #RRGGBBAA.",
	Example: `  shade set fill_primary "#FF20A0"
  shade set background_primary "#101010" --mode dark`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := theme.ParseColorKey(args[0])
		if err != nil {
			return err
		}
		c, err := theme.ParseColor(args[1])
		if err != nil {
			return err
		}

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		mode, err := resolveMode(setMode, s.store)
		if err != nil {
			return err
		}
		if err := s.store.SetColor(mode, key, c); err != nil {
			return err
		}
		if err := s.prefs.SaveOverride(cmd.Context(), mode, key, c); err != nil {
			return err
		}

		if IsJSONOutput() {
			return writeJSON(cmd.OutOrStdout(), map[string]string{
				"mode":  mode.String(),
				"key":   key.String(),
				"color": c.Hex(),
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s %s to %s\n", mode, key, c.Hex())
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop saved color overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		var modes []theme.Mode
		if resetAll {
			if strings.TrimSpace(resetMode) != "" {
				return errors.New("--all and --mode are mutually exclusive")
			}
			modes = []theme.Mode{theme.Dark, theme.Light}
		} else {
			mode, err := resolveMode(resetMode, s.store)
			if err != nil {
				return err
			}
			modes = []theme.Mode{mode}
		}

		for _, mode := range modes {
			removed, err := s.prefs.DeleteOverrides(cmd.Context(), mode)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s palette (%d overrides removed)\n", mode, removed)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write both palettes to a YAML file",
	Long:  "Write both palettes and the active mode to a YAML file usable as theme.palette_file. Use - for stdout.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		if args[0] == "-" {
			dark, light := s.store.Palettes()
			data, err := theme.MarshalPaletteFile(dark, light, s.store.ActiveMode())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := theme.WritePaletteFile(args[0], s.store); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported palettes to %s\n", args[0])
		return nil
	},
}
