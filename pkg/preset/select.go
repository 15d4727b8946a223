package preset

import (
	"gitlab.com/tinyland/lab/investigator-themes/pkg/config"
)

// DefaultID is used when the config names no preset.
const DefaultID = BuiltinNiceBlackAgents

// SelectByConfig returns the preset id named by cfg, or DefaultID when it
// is empty or "auto".
func SelectByConfig(cfg config.Config) string {
	name := cfg.Sheet.Preset
	if name == "" || name == "auto" {
		return DefaultID
	}
	return name
}

// ThemeByConfig returns the theme override from cfg. An empty result means
// the preset's defaultTheme applies.
func ThemeByConfig(cfg config.Config) string {
	if cfg.Sheet.Theme == "auto" {
		return ""
	}
	return cfg.Sheet.Theme
}
