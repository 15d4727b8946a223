package docs

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/investigator-themes/pkg/config"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/preset"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/theme"
)

// Field documents one key of a document or config table.
type Field struct {
	// Name is the key as written in TOML or YAML, dotted for nested keys.
	Name        string
	Type        string
	Default     string
	Required    bool
	Description string
}

// ConfigTable documents one TOML table of the configuration file.
type ConfigTable struct {
	Name        string
	Description string
	Fields      []Field
	// Example is the body of the table in TOML.
	Example string
}

// ThemeFields lists the keys of the [theme] table of a theme document.
func ThemeFields() []Field {
	colors := []struct{ name, desc string }{
		{"accent", "Callout color for clickable text and other hot items."},
		{"accentContrast", "Text color over an accent background."},
		{"glow", "Hover effect on hot items."},
		{"wallpaper", "Flat color shown before images load."},
		{"text", "Non-interactive text."},
		{"backgroundButton", "Button background."},
		{"backgroundPrimary", "Panel surface layered over the wallpaper; text and accent must stay legible on it."},
		{"backgroundSecondary", "Less prominent panel surface, also layered over backgroundPrimary."},
	}
	fields := []Field{
		{Name: "schemaVersion", Type: "string", Required: true, Description: "Must be `" + theme.SchemaV1 + "`."},
		{Name: "displayName", Type: "string", Required: true, Description: "Name shown in the theme picker."},
		{Name: "global", Type: "string", Description: "Stylesheet text inserted at the top of the document, e.g. font imports."},
		{Name: "largeSheetRootStyle", Type: "style", Required: true, Description: "Root style of the full sheet. Backgrounds are always layered over it before text."},
		{Name: "smallSheetRootStyle", Type: "style", Default: "largeSheetRootStyle", Description: "Root style of small sheets, where text may sit directly on it."},
		{Name: "appWindowStyle", Type: "style", Description: "Added to application windows."},
		{Name: "bodyFont", Type: "string", Description: "Font for block text."},
		{Name: "displayFont", Type: "string", Description: "Font for titles and labels."},
		{Name: "logo.fontScaleFactor", Type: "number", Default: strconv.FormatFloat(theme.DefaultFontScaleFactor, 'f', -1, 64), Description: "Scales the logo lettering. Must be positive."},
		{Name: "logo.frontTextElementStyle", Type: "style", Required: true, Description: "Front logo text element."},
		{Name: "logo.rearTextElementStyle", Type: "style", Required: true, Description: "Rear logo text element; put drop shadows here."},
		{Name: "logo.textElementsStyle", Type: "style", Required: true, Description: "Wrapper around both text elements; put transforms here."},
		{Name: "logo.backdropStyle", Type: "style", Required: true, Description: "Element behind the logo text."},
	}
	for _, c := range colors {
		fields = append(fields, Field{Name: "colors." + c.name, Type: "color", Required: true, Description: c.desc})
	}
	return append(fields,
		Field{Name: "colors.danger", Type: "color", Default: theme.DefaultDanger, Description: fmt.Sprintf("Tint for danger states, mixed %g into the backgrounds.", theme.DangerMix)},
		Field{Name: "colors.controlBorder", Type: "color", Default: "colors.text", Description: "Outline of controls."},
	)
}

// PresetFields lists the keys of the [preset] table of a preset document.
func PresetFields() []Field {
	return []Field{
		{Name: "schemaVersion", Type: "string", Required: true, Description: "Must be `" + preset.SchemaV1 + "`."},
		{Name: "displayName", Type: "string", Required: true, Description: "Name shown in the system picker."},
		{Name: "defaultTheme", Type: "string", Required: true, Description: "Id of an installed theme."},
		{Name: "investigativeAbilityCategories", Type: "list", Description: "Investigative ability categories, unique."},
		{Name: "generalAbilityCategories", Type: "list", Description: "General ability categories, unique."},
		{Name: "combatAbilities", Type: "list", Description: "Abilities usable in combat, unique."},
		{Name: "occupationLabel", Type: "string", Required: true, Description: "What the system calls a character's occupation."},
		{Name: "shortNotes", Type: "list", Description: "One-line note fields, unique."},
		{Name: "longNotes", Type: "list", Description: "Multi-line note fields, unique."},
		{Name: "newPCPacks", Type: "list", Description: "Compendium packs added to new player characters."},
		{Name: "newNPCPacks", Type: "list", Description: "Compendium packs added to new non-player characters."},
		{Name: "useBoost", Type: "bool", Default: "false", Description: "Enables the boost mechanic."},
		{Name: "useMwStyleAbilities", Type: "bool", Default: "false", Description: "Uses Moribund World ability rules."},
		{Name: "mwHiddenShortNotes", Type: "list", Description: "Short notes hidden under Moribund World rules; each must be one of shortNotes."},
		{Name: "mwUseAlternativeItemTypes", Type: "bool", Default: "false", Description: "Uses the Moribund World item types."},
	}
}

// ConfigTables documents the configuration file, with defaults taken from
// config.DefaultConfig.
func ConfigTables() []ConfigTable {
	def := config.DefaultConfig()
	return []ConfigTable{
		{
			Name:        "logging",
			Description: "Log output, written to stderr.",
			Fields: []Field{
				{Name: "level", Type: "string", Default: def.Logging.Level, Description: "debug, info, warn or error. Env: `INVESTIGATOR_LOG_LEVEL`."},
				{Name: "format", Type: "string", Default: def.Logging.Format, Description: "json or console."},
			},
			Example: "level = \"debug\"\nformat = \"json\"",
		},
		{
			Name:        "registry",
			Description: "What is installed at startup. Themes from every directory install before any preset.",
			Fields: []Field{
				{Name: "builtins", Type: "bool", Default: strconv.FormatBool(def.Registry.Builtins), Description: "Install the built-in themes and presets first."},
				{Name: "theme_dirs", Type: "list", Default: "$XDG_CONFIG_HOME/investigator-themes/themes", Description: "Directories of theme documents. `~` is expanded."},
				{Name: "preset_dirs", Type: "list", Default: "$XDG_CONFIG_HOME/investigator-themes/presets", Description: "Directories of preset documents. `~` is expanded."},
			},
			Example: "builtins = true\ntheme_dirs = [\"~/themes\"]",
		},
		{
			Name:        "sheet",
			Description: "The preset and theme `resolve` reports.",
			Fields: []Field{
				{Name: "preset", Type: "string", Default: def.Sheet.Preset, Description: "Preset id, or `auto`. Env: `INVESTIGATOR_PRESET`."},
				{Name: "theme", Type: "string", Description: "Theme id overriding the preset's defaultTheme. Env: `INVESTIGATOR_THEME`."},
			},
			Example: "preset = \"trailOfCthulhu\"\ntheme = \"highContrastTheme\"",
		},
	}
}

// dcRenderFields renders a key table followed by a note on style and color
// values.
func dcRenderFields(fields []Field) string {
	var b strings.Builder
	dcWriteTable(&b, fields)
	b.WriteString("\nA `style` is a table of CSS properties; nested tables are selectors. ")
	b.WriteString("A `color` is any CSS color: hex, rgb(), rgba(), hsl(), hsla(), a named color or `transparent`.\n")
	return b.String()
}

func dcRenderConfig(tables []ConfigTable) string {
	var b strings.Builder
	b.WriteString("Config file location: `$XDG_CONFIG_HOME/investigator-themes/config.toml`, ")
	b.WriteString("falling back to `~/.config/investigator-themes/config.toml`.\n\n")
	for _, t := range tables {
		fmt.Fprintf(&b, "### `[%s]`\n\n%s\n\n", t.Name, t.Description)
		dcWriteTable(&b, t.Fields)
		fmt.Fprintf(&b, "\n```toml\n[%s]\n%s\n```\n\n", t.Name, t.Example)
	}
	return b.String()
}

func dcWriteTable(b *strings.Builder, fields []Field) {
	b.WriteString("| Key | Type | Default | Required | Description |\n")
	b.WriteString("|-----|------|---------|----------|-------------|\n")
	for _, f := range fields {
		req := "No"
		if f.Required {
			req = "Yes"
		}
		def := "-"
		if f.Default != "" {
			def = "`" + f.Default + "`"
		}
		fmt.Fprintf(b, "| `%s` | %s | %s | %s | %s |\n", f.Name, f.Type, def, req, f.Description)
	}
}

func dcRenderBuiltins() string {
	var b strings.Builder
	seeds := theme.Builtins()
	b.WriteString("| Theme | Name |\n|-------|------|\n")
	for _, id := range theme.BuiltinIDs() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", id, seeds[id].DisplayName)
	}
	presets := preset.Builtins()
	b.WriteString("\n| Preset | Name | Default theme |\n|--------|------|---------------|\n")
	for _, id := range preset.BuiltinIDs() {
		p := presets[id]
		fmt.Fprintf(&b, "| `%s` | %s | `%s` |\n", id, p.DisplayName, p.DefaultTheme)
	}
	return b.String()
}
