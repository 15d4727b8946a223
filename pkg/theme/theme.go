// Package theme defines the character-sheet theme schema: the author-facing
// Seed, the normalized Theme the host renders with, and the rules that turn
// one into the other.
package theme

// SchemaV1 is the only schema version understood by this package.
const SchemaV1 = "v1"

// Defaults filled in by Normalize.
const (
	DefaultFontScaleFactor = 14.0
	DefaultDanger          = "red"
)

// Seed is a theme as written by an author. Optional fields may be left
// empty; Normalize fills them in.
type Seed struct {
	SchemaVersion string `toml:"schemaVersion" yaml:"schemaVersion" json:"schemaVersion"`
	// DisplayName is shown in the theme picker.
	DisplayName string `toml:"displayName" yaml:"displayName" json:"displayName"`
	// Global is stylesheet text injected once per document, typically font
	// @import rules.
	Global string `toml:"global,omitempty" yaml:"global,omitempty" json:"global,omitempty"`
	// LargeSheetRootStyle is applied to the root of large sheets. Text is
	// never drawn directly on it; BackgroundPrimary or BackgroundSecondary
	// is layered over it first.
	LargeSheetRootStyle Style `toml:"largeSheetRootStyle" yaml:"largeSheetRootStyle" json:"largeSheetRootStyle"`
	// SmallSheetRootStyle is for small surfaces where text may sit directly
	// on the root. Nil defaults to LargeSheetRootStyle; an empty table is
	// kept as is, so it is written even when empty.
	SmallSheetRootStyle Style  `toml:"smallSheetRootStyle" yaml:"smallSheetRootStyle" json:"smallSheetRootStyle"`
	AppWindowStyle      Style  `toml:"appWindowStyle,omitempty" yaml:"appWindowStyle,omitempty" json:"appWindowStyle,omitempty"`
	BodyFont            string `toml:"bodyFont,omitempty" yaml:"bodyFont,omitempty" json:"bodyFont,omitempty"`
	DisplayFont         string `toml:"displayFont,omitempty" yaml:"displayFont,omitempty" json:"displayFont,omitempty"`

	Logo   LogoSeed `toml:"logo" yaml:"logo" json:"logo"`
	Colors Colors   `toml:"colors" yaml:"colors" json:"colors"`
}

// LogoSeed styles the lettering of the sheet logo.
type LogoSeed struct {
	// FontScaleFactor scales the logo lettering. Defaults to 14.
	FontScaleFactor *float64 `toml:"fontScaleFactor,omitempty" yaml:"fontScaleFactor,omitempty" json:"fontScaleFactor,omitempty"`

	FrontTextElementStyle Style `toml:"frontTextElementStyle" yaml:"frontTextElementStyle" json:"frontTextElementStyle"`
	RearTextElementStyle  Style `toml:"rearTextElementStyle" yaml:"rearTextElementStyle" json:"rearTextElementStyle"`
	TextElementsStyle     Style `toml:"textElementsStyle" yaml:"textElementsStyle" json:"textElementsStyle"`
	BackdropStyle         Style `toml:"backdropStyle" yaml:"backdropStyle" json:"backdropStyle"`
}

// Colors is the base palette. Every value is a CSS color string.
//
// BackgroundPrimary layered over Wallpaper (or the root style) must give a
// surface that is legible with Text and Accent. BackgroundSecondary is the
// same but less prominent, and may also be layered on BackgroundPrimary.
type Colors struct {
	Accent              string `toml:"accent" yaml:"accent" json:"accent"`
	AccentContrast      string `toml:"accentContrast" yaml:"accentContrast" json:"accentContrast"`
	Glow                string `toml:"glow" yaml:"glow" json:"glow"`
	Wallpaper           string `toml:"wallpaper" yaml:"wallpaper" json:"wallpaper"`
	Text                string `toml:"text" yaml:"text" json:"text"`
	BackgroundButton    string `toml:"backgroundButton" yaml:"backgroundButton" json:"backgroundButton"`
	BackgroundPrimary   string `toml:"backgroundPrimary" yaml:"backgroundPrimary" json:"backgroundPrimary"`
	BackgroundSecondary string `toml:"backgroundSecondary" yaml:"backgroundSecondary" json:"backgroundSecondary"`
	// Danger defaults to "red".
	Danger string `toml:"danger,omitempty" yaml:"danger,omitempty" json:"danger,omitempty"`
	// ControlBorder outlines controls. Defaults to Text.
	ControlBorder string `toml:"controlBorder,omitempty" yaml:"controlBorder,omitempty" json:"controlBorder,omitempty"`
}

// Theme is a normalized seed: every default resolved and the derived
// colors computed.
type Theme struct {
	SchemaVersion       string `toml:"schemaVersion" yaml:"schemaVersion" json:"schemaVersion"`
	DisplayName         string `toml:"displayName" yaml:"displayName" json:"displayName"`
	Global              string `toml:"global,omitempty" yaml:"global,omitempty" json:"global,omitempty"`
	LargeSheetRootStyle Style  `toml:"largeSheetRootStyle" yaml:"largeSheetRootStyle" json:"largeSheetRootStyle"`
	SmallSheetRootStyle Style  `toml:"smallSheetRootStyle" yaml:"smallSheetRootStyle" json:"smallSheetRootStyle"`
	AppWindowStyle      Style  `toml:"appWindowStyle,omitempty" yaml:"appWindowStyle,omitempty" json:"appWindowStyle,omitempty"`
	BodyFont            string `toml:"bodyFont,omitempty" yaml:"bodyFont,omitempty" json:"bodyFont,omitempty"`
	DisplayFont         string `toml:"displayFont,omitempty" yaml:"displayFont,omitempty" json:"displayFont,omitempty"`

	Logo   Logo        `toml:"logo" yaml:"logo" json:"logo"`
	Colors ThemeColors `toml:"colors" yaml:"colors" json:"colors"`
}

// Logo is LogoSeed with FontScaleFactor resolved.
type Logo struct {
	FontScaleFactor       float64 `toml:"fontScaleFactor" yaml:"fontScaleFactor" json:"fontScaleFactor"`
	FrontTextElementStyle Style   `toml:"frontTextElementStyle" yaml:"frontTextElementStyle" json:"frontTextElementStyle"`
	RearTextElementStyle  Style   `toml:"rearTextElementStyle" yaml:"rearTextElementStyle" json:"rearTextElementStyle"`
	TextElementsStyle     Style   `toml:"textElementsStyle" yaml:"textElementsStyle" json:"textElementsStyle"`
	BackdropStyle         Style   `toml:"backdropStyle" yaml:"backdropStyle" json:"backdropStyle"`
}

// ThemeColors is the base palette, with Danger and ControlBorder always set,
// plus the colors derived from it.
type ThemeColors struct {
	Colors `yaml:",inline"`

	// BgOpaquePrimary is BackgroundPrimary composited over Wallpaper.
	BgOpaquePrimary   string `toml:"bgOpaquePrimary" yaml:"bgOpaquePrimary" json:"bgOpaquePrimary"`
	BgOpaqueSecondary string `toml:"bgOpaqueSecondary" yaml:"bgOpaqueSecondary" json:"bgOpaqueSecondary"`
	// BgTransDangerPrimary is BackgroundPrimary tinted toward Danger, keeping
	// BackgroundPrimary's alpha.
	BgTransDangerPrimary   string `toml:"bgTransDangerPrimary" yaml:"bgTransDangerPrimary" json:"bgTransDangerPrimary"`
	BgTransDangerSecondary string `toml:"bgTransDangerSecondary" yaml:"bgTransDangerSecondary" json:"bgTransDangerSecondary"`
	// BgOpaqueDangerPrimary is BgTransDangerPrimary composited over Wallpaper.
	BgOpaqueDangerPrimary   string `toml:"bgOpaqueDangerPrimary" yaml:"bgOpaqueDangerPrimary" json:"bgOpaqueDangerPrimary"`
	BgOpaqueDangerSecondary string `toml:"bgOpaqueDangerSecondary" yaml:"bgOpaqueDangerSecondary" json:"bgOpaqueDangerSecondary"`
}

// Seed converts t back into author form with every optional field present.
// Normalizing the result yields t again.
func (t Theme) Seed() Seed {
	scale := t.Logo.FontScaleFactor
	return Seed{
		SchemaVersion:       t.SchemaVersion,
		DisplayName:         t.DisplayName,
		Global:              t.Global,
		LargeSheetRootStyle: t.LargeSheetRootStyle.Clone(),
		SmallSheetRootStyle: t.SmallSheetRootStyle.Clone(),
		AppWindowStyle:      t.AppWindowStyle.Clone(),
		BodyFont:            t.BodyFont,
		DisplayFont:         t.DisplayFont,
		Logo: LogoSeed{
			FontScaleFactor:       &scale,
			FrontTextElementStyle: t.Logo.FrontTextElementStyle.Clone(),
			RearTextElementStyle:  t.Logo.RearTextElementStyle.Clone(),
			TextElementsStyle:     t.Logo.TextElementsStyle.Clone(),
			BackdropStyle:         t.Logo.BackdropStyle.Clone(),
		},
		Colors: t.Colors.Colors,
	}
}

// Clone returns a deep copy of t.
func (t Theme) Clone() Theme {
	out := t
	out.LargeSheetRootStyle = t.LargeSheetRootStyle.Clone()
	out.SmallSheetRootStyle = t.SmallSheetRootStyle.Clone()
	out.AppWindowStyle = t.AppWindowStyle.Clone()
	out.Logo.FrontTextElementStyle = t.Logo.FrontTextElementStyle.Clone()
	out.Logo.RearTextElementStyle = t.Logo.RearTextElementStyle.Clone()
	out.Logo.TextElementsStyle = t.Logo.TextElementsStyle.Clone()
	out.Logo.BackdropStyle = t.Logo.BackdropStyle.Clone()
	return out
}

// Clone returns a deep copy of s.
func (s Seed) Clone() Seed {
	out := s
	out.LargeSheetRootStyle = s.LargeSheetRootStyle.Clone()
	out.SmallSheetRootStyle = s.SmallSheetRootStyle.Clone()
	out.AppWindowStyle = s.AppWindowStyle.Clone()
	if s.Logo.FontScaleFactor != nil {
		f := *s.Logo.FontScaleFactor
		out.Logo.FontScaleFactor = &f
	}
	out.Logo.FrontTextElementStyle = s.Logo.FrontTextElementStyle.Clone()
	out.Logo.RearTextElementStyle = s.Logo.RearTextElementStyle.Clone()
	out.Logo.TextElementsStyle = s.Logo.TextElementsStyle.Clone()
	out.Logo.BackdropStyle = s.Logo.BackdropStyle.Clone()
	return out
}
