package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/investigator-themes/pkg/csscolor"
)

// Preview renders the palette of t as labelled swatches, one per line.
// Translucent colors are shown composited over the wallpaper, since that is
// how they reach the screen. The renderer decides the color profile, so a
// renderer set to termenv.Ascii yields plain text.
func Preview(t Theme, r *lipgloss.Renderer) string {
	wallpaper, err := csscolor.Parse(t.Colors.Wallpaper)
	if err != nil {
		wallpaper = csscolor.MustParse("black")
	}
	wallpaper.A = 1
	text := thScreenHex(t.Colors.Text, wallpaper)

	title := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(thScreenHex(t.Colors.Accent, wallpaper))).
		Render(t.DisplayName)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	for _, s := range thSwatches(t) {
		chip := r.NewStyle().
			Background(lipgloss.Color(thScreenHex(s.value, wallpaper))).
			Foreground(lipgloss.Color(text)).
			Padding(0, 1).
			Render("  ")
		label := r.NewStyle().Width(24).Render(s.name)
		fmt.Fprintf(&b, "%s %s %s\n", chip, label, s.value)
	}
	return b.String()
}

type thSwatch struct {
	name  string
	value string
}

func thSwatches(t Theme) []thSwatch {
	c := t.Colors
	return []thSwatch{
		{"accent", c.Accent},
		{"accentContrast", c.AccentContrast},
		{"glow", c.Glow},
		{"wallpaper", c.Wallpaper},
		{"text", c.Text},
		{"backgroundButton", c.BackgroundButton},
		{"backgroundPrimary", c.BackgroundPrimary},
		{"backgroundSecondary", c.BackgroundSecondary},
		{"danger", c.Danger},
		{"controlBorder", c.ControlBorder},
		{"bgOpaquePrimary", c.BgOpaquePrimary},
		{"bgOpaqueSecondary", c.BgOpaqueSecondary},
		{"bgTransDangerPrimary", c.BgTransDangerPrimary},
		{"bgTransDangerSecondary", c.BgTransDangerSecondary},
		{"bgOpaqueDangerPrimary", c.BgOpaqueDangerPrimary},
		{"bgOpaqueDangerSecondary", c.BgOpaqueDangerSecondary},
	}
}

// thScreenHex returns the opaque #rrggbb a color shows as over bg.
// Unparseable input falls back to bg.
func thScreenHex(value string, bg csscolor.Color) string {
	c, err := csscolor.Parse(value)
	if err != nil {
		return bg.String()
	}
	return c.Over(bg).String()
}
