package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const appName = "investigator-themes"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/investigator-themes/config.toml
//  2. ~/.config/investigator-themes/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. Keys the Config
// type does not know are an error.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("unknown key %q", keys[0].String())
	}
	applyEnvOverrides(cfg)
	cfg.Registry.ThemeDirs = expandHomeAll(cfg.Registry.ThemeDirs)
	cfg.Registry.PresetDirs = expandHomeAll(cfg.Registry.PresetDirs)
	return cfg, nil
}

// DefaultConfig returns the default configuration: builtins on, the user
// theme and preset directories under the XDG config dir, info logging.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	base := filepath.Join(xdgConfigHome(home), appName)

	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Registry: RegistryConfig{
			Builtins:   true,
			ThemeDirs:  []string{filepath.Join(base, "themes")},
			PresetDirs: []string{filepath.Join(base, "presets")},
		},
		Sheet: SheetConfig{
			Preset: "niceBlackAgents",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("INVESTIGATOR_THEME"); v != "" {
		cfg.Sheet.Theme = v
	}
	if v := os.Getenv("INVESTIGATOR_PRESET"); v != "" {
		cfg.Sheet.Preset = v
	}
	if v := os.Getenv("INVESTIGATOR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func expandHomeAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = ExpandHome(p)
	}
	return out
}
