// Package config provides TOML-based configuration for investigator-themes.
package config

// Config is the top-level configuration file.
type Config struct {
	Logging  LoggingConfig  `toml:"logging"`
	Registry RegistryConfig `toml:"registry"`
	Sheet    SheetConfig    `toml:"sheet"`
}

// LoggingConfig selects the zap logger built by NewLogger.
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, console
}

// RegistryConfig controls what is installed into the registry at startup.
type RegistryConfig struct {
	// Builtins installs the built-in themes and presets before any files.
	Builtins   bool     `toml:"builtins"`
	ThemeDirs  []string `toml:"theme_dirs"`
	PresetDirs []string `toml:"preset_dirs"`
}

// SheetConfig picks the preset and theme a sheet renders with.
type SheetConfig struct {
	Preset string `toml:"preset"`
	// Theme overrides the preset's defaultTheme when set.
	Theme string `toml:"theme"`
}
