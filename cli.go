package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/investigator-themes/pkg/config"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/docs"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/loader"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/preset"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/registry"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/terminal"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/theme"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/validation"
)

// errInvalidDocuments makes validate exit non-zero after it has printed the
// problems itself.
var errInvalidDocuments = errors.New("invalid documents")

// app is the state shared by every command once config is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	reg        *registry.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "investigator-themes",
		Short:        "Theme and preset tooling for GUMSHOE character sheets",
		Long:         "Validate, list and preview the themes and game-system presets used by the investigator character sheet.",
		Version:      fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to configuration file")

	root.AddCommand(
		a.validateCmd(),
		a.listCmd(),
		a.showCmd(),
		a.resolveCmd(),
		a.previewCmd(),
		docsCmd(),
		versionCmd(),
	)
	return root
}

// setup loads config, builds the logger and fills the registry with the
// builtins and the configured directories. Documents that fail to load are
// logged and skipped.
func (a *app) setup() error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFromFile(a.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	a.logger, err = config.NewLogger(a.cfg.Logging)
	if err != nil {
		return err
	}
	a.reg = registry.New(a.logger)
	if a.cfg.Registry.Builtins {
		if err := a.reg.InstallBuiltins(); err != nil {
			return err
		}
	}
	dirs := append(append([]string{}, a.cfg.Registry.ThemeDirs...), a.cfg.Registry.PresetDirs...)
	if _, err := loader.New(a.reg, a.logger).LoadDirs(dirs...); err != nil {
		for _, e := range multierr.Errors(err) {
			a.logger.Warn("skipping document", zap.Error(e))
		}
	}
	return nil
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate theme and preset documents",
		Long: "Decode each document and install it into a scratch registry holding the builtins. " +
			"Presets may refer to themes from the same run.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			scratch := registry.New(a.logger)
			if err := scratch.InstallBuiltins(); err != nil {
				return err
			}
			res, err := loader.New(scratch, a.logger).LoadFiles(args...)
			out := cmd.OutOrStdout()
			printProblems(out, err)
			fmt.Fprintf(out, "%d theme(s), %d preset(s) valid\n", len(res.Themes), len(res.Presets))
			if err != nil {
				return errInvalidDocuments
			}
			return nil
		},
	}
}

// printProblems writes one line per field error, prefixed with its file.
func printProblems(w io.Writer, err error) {
	for _, e := range multierr.Errors(err) {
		file := ""
		var fe *loader.FileError
		if errors.As(e, &fe) {
			file = fe.File + ": "
			e = fe.Err
		}
		fields := validation.Fields(e)
		if len(fields) == 0 {
			fmt.Fprintf(w, "%s%v\n", file, e)
			continue
		}
		for _, f := range fields {
			fmt.Fprintf(w, "%s%v\n", file, f)
		}
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed themes and presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "THEMES")
			for _, id := range a.reg.ThemeIDs() {
				t, _ := a.reg.Theme(id)
				fmt.Fprintf(out, "  %-24s %s\n", id, t.DisplayName)
			}
			fmt.Fprintln(out, "PRESETS")
			for _, id := range a.reg.PresetIDs() {
				p, _ := a.reg.Preset(id)
				fmt.Fprintf(out, "  %-24s %-28s theme=%s\n", id, p.DisplayName, p.DefaultTheme)
			}
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:       "show theme|preset ID",
		Short:     "Print a normalized theme or preset",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{loader.KindTheme, loader.KindPreset},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			kind, id := args[0], args[1]
			var record any
			switch kind {
			case loader.KindTheme:
				t, ok := a.reg.Theme(id)
				if !ok {
					return fmt.Errorf("theme %q: %w", id, registry.ErrNotFound)
				}
				record = t
			case loader.KindPreset:
				p, ok := a.reg.Preset(id)
				if !ok {
					return fmt.Errorf("preset %q: %w", id, registry.ErrNotFound)
				}
				record = p
			default:
				return fmt.Errorf("%w %q", loader.ErrUnknownKind, kind)
			}
			return encode(cmd.OutOrStdout(), format, record)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "Output format (toml|yaml|json)")
	return cmd
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "toml":
		return toml.NewEncoder(w).Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q: must be toml, yaml or json", format)
	}
}

func (a *app) resolveCmd() *cobra.Command {
	var themeID string
	cmd := &cobra.Command{
		Use:   "resolve [PRESET]",
		Short: "Print the preset and the theme it renders with",
		Long:  "Without arguments the preset and theme come from the [sheet] config section.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			presetID := preset.SelectByConfig(*a.cfg)
			if len(args) == 1 {
				presetID = args[0]
			}
			override := preset.ThemeByConfig(*a.cfg)
			if cmd.Flags().Changed("theme") {
				override = themeID
			}
			p, t, err := a.reg.Resolve(presetID, override)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "preset: %s (%s)\ntheme:  %s (%s)\n",
				presetID, p.DisplayName, t.DisplayName, themeName(p, override))
			return nil
		},
	}
	cmd.Flags().StringVar(&themeID, "theme", "", "Theme id overriding the preset's default theme")
	return cmd
}

func themeName(p preset.Preset, override string) string {
	if override != "" {
		return override
	}
	return p.DefaultTheme
}

func (a *app) previewCmd() *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "preview THEME",
		Short: "Show a theme's palette as terminal swatches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := terminal.ParseColorMode(color)
			if err != nil {
				return err
			}
			if err := a.setup(); err != nil {
				return err
			}
			t, ok := a.reg.Theme(args[0])
			if !ok {
				return fmt.Errorf("theme %q: %w", args[0], registry.ErrNotFound)
			}
			out := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(out)
			r.SetColorProfile(terminal.ColorProfile(out, mode))
			fmt.Fprint(out, theme.Preview(t, r))
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "auto", "Color output (auto|always|never)")
	return cmd
}

func docsCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Print or write the theme, preset and config reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				fmt.Fprint(cmd.OutOrStdout(), docs.Reference("").GenerateSingle())
				return nil
			}
			written, err := docs.Reference(outDir).Generate()
			for _, f := range written {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "Write one Markdown file per section to this directory")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "investigator-themes %s (%s) built %s\n", version, commit, date)
		},
	}
}
