// investigator-themes checks and inspects character-sheet themes and
// game-system presets.
//
// Usage:
//
//	investigator-themes [--config path] <command>
//
// Commands:
//
//	validate FILE...            Validate theme and preset documents
//	list                        List installed themes and presets
//	show theme|preset ID        Print a normalized record (--format toml|yaml|json)
//	resolve [PRESET]            Print the preset and the theme it renders with
//	preview THEME               Show a theme's palette as terminal swatches
//	docs                        Print the theme, preset and config reference
//	version                     Print version and exit
package main

import (
	"os"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
