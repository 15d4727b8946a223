package theme

import (
	"math"
	"strings"

	"gitlab.com/tinyland/lab/investigator-themes/pkg/csscolor"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/validation"
)

// DangerMix is how far the danger-tinted backgrounds move from the base
// background toward the danger color.
const DangerMix = 0.5

// Validate checks every field of seed and returns all problems found. Each
// problem is a *validation.Error naming the offending field path.
func Validate(seed Seed) error {
	var c validation.Collector

	switch seed.SchemaVersion {
	case SchemaV1:
	case "":
		c.Add("schemaVersion", "is required")
	default:
		c.Add("schemaVersion", "must be %q, got %q", SchemaV1, seed.SchemaVersion)
	}
	if strings.TrimSpace(seed.DisplayName) == "" {
		c.Add("displayName", "is required")
	}

	requireStyle(&c, "largeSheetRootStyle", seed.LargeSheetRootStyle)
	validateStyle(&c, "smallSheetRootStyle", seed.SmallSheetRootStyle)
	validateStyle(&c, "appWindowStyle", seed.AppWindowStyle)

	if f := seed.Logo.FontScaleFactor; f != nil && (math.IsNaN(*f) || math.IsInf(*f, 0) || *f <= 0) {
		c.Add("logo.fontScaleFactor", "must be a positive number, got %v", *f)
	}
	requireStyle(&c, "logo.frontTextElementStyle", seed.Logo.FrontTextElementStyle)
	requireStyle(&c, "logo.rearTextElementStyle", seed.Logo.RearTextElementStyle)
	requireStyle(&c, "logo.textElementsStyle", seed.Logo.TextElementsStyle)
	requireStyle(&c, "logo.backdropStyle", seed.Logo.BackdropStyle)

	for _, f := range colorFields(seed.Colors) {
		path := "colors." + f.name
		switch {
		case f.value == "" && f.required:
			c.Add(path, "is required")
		case f.value == "":
		case !csscolor.Valid(f.value):
			c.Add(path, "invalid CSS color %q", f.value)
		}
	}

	return c.Err()
}

// Normalize validates seed and produces the Theme the host renders with.
// Defaults are filled in and derived colors computed; author-supplied
// values are kept verbatim. The seed is not modified.
func Normalize(seed Seed) (Theme, error) {
	if err := Validate(seed); err != nil {
		return Theme{}, err
	}
	seed = seed.Clone()

	small := seed.SmallSheetRootStyle
	if small == nil {
		small = seed.LargeSheetRootStyle.Clone()
	}
	scale := DefaultFontScaleFactor
	if seed.Logo.FontScaleFactor != nil {
		scale = *seed.Logo.FontScaleFactor
	}

	colors := seed.Colors
	if colors.Danger == "" {
		colors.Danger = DefaultDanger
	}
	if colors.ControlBorder == "" {
		colors.ControlBorder = colors.Text
	}

	return Theme{
		SchemaVersion:       seed.SchemaVersion,
		DisplayName:         seed.DisplayName,
		Global:              seed.Global,
		LargeSheetRootStyle: seed.LargeSheetRootStyle,
		SmallSheetRootStyle: small,
		AppWindowStyle:      seed.AppWindowStyle,
		BodyFont:            seed.BodyFont,
		DisplayFont:         seed.DisplayFont,
		Logo: Logo{
			FontScaleFactor:       scale,
			FrontTextElementStyle: seed.Logo.FrontTextElementStyle,
			RearTextElementStyle:  seed.Logo.RearTextElementStyle,
			TextElementsStyle:     seed.Logo.TextElementsStyle,
			BackdropStyle:         seed.Logo.BackdropStyle,
		},
		Colors: deriveColors(colors),
	}, nil
}

// deriveColors computes the host variants from an already validated palette.
func deriveColors(c Colors) ThemeColors {
	wallpaper := csscolor.MustParse(c.Wallpaper)
	danger := csscolor.MustParse(c.Danger)
	primary := csscolor.MustParse(c.BackgroundPrimary)
	secondary := csscolor.MustParse(c.BackgroundSecondary)

	transPrimary := primary.Mix(danger, DangerMix)
	transSecondary := secondary.Mix(danger, DangerMix)

	return ThemeColors{
		Colors:                  c,
		BgOpaquePrimary:         primary.Over(wallpaper).String(),
		BgOpaqueSecondary:       secondary.Over(wallpaper).String(),
		BgTransDangerPrimary:    transPrimary.String(),
		BgTransDangerSecondary:  transSecondary.String(),
		BgOpaqueDangerPrimary:   transPrimary.Over(wallpaper).String(),
		BgOpaqueDangerSecondary: transSecondary.Over(wallpaper).String(),
	}
}

type colorField struct {
	name     string
	value    string
	required bool
}

// colorFields lists the palette in declaration order so errors come out
// in a stable order.
func colorFields(c Colors) []colorField {
	return []colorField{
		{"accent", c.Accent, true},
		{"accentContrast", c.AccentContrast, true},
		{"glow", c.Glow, true},
		{"wallpaper", c.Wallpaper, true},
		{"text", c.Text, true},
		{"backgroundButton", c.BackgroundButton, true},
		{"backgroundPrimary", c.BackgroundPrimary, true},
		{"backgroundSecondary", c.BackgroundSecondary, true},
		{"danger", c.Danger, false},
		{"controlBorder", c.ControlBorder, false},
	}
}

func requireStyle(c *validation.Collector, path string, s Style) {
	if s == nil {
		c.Add(path, "is required")
		return
	}
	validateStyle(c, path, s)
}
