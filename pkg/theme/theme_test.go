package theme

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/investigator-themes/pkg/csscolor"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/validation"
)

// noirSeed is the minimal seed: only required fields set.
func noirSeed() Seed {
	return Seed{
		SchemaVersion: SchemaV1,
		DisplayName:   "Noir",
		Colors: Colors{
			Accent:              "#ff0000",
			AccentContrast:      "#ffffff",
			Glow:                "#ff8888",
			Wallpaper:           "#111111",
			Text:                "#eeeeee",
			BackgroundButton:    "#222222",
			BackgroundPrimary:   "#1a1a1a",
			BackgroundSecondary: "#242424",
		},
		LargeSheetRootStyle: Style{},
		Logo: LogoSeed{
			FrontTextElementStyle: Style{},
			RearTextElementStyle:  Style{},
			TextElementsStyle:     Style{},
			BackdropStyle:         Style{},
		},
	}
}

// --- Normalize defaults ---

func TestNormalizeNoirDefaults(t *testing.T) {
	th, err := Normalize(noirSeed())
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if th.Colors.Danger != "red" {
		t.Errorf("Colors.Danger = %q, want %q", th.Colors.Danger, "red")
	}
	if th.Colors.ControlBorder != "#eeeeee" {
		t.Errorf("Colors.ControlBorder = %q, want %q", th.Colors.ControlBorder, "#eeeeee")
	}
	if !reflect.DeepEqual(th.SmallSheetRootStyle, th.LargeSheetRootStyle) {
		t.Errorf("SmallSheetRootStyle = %v, want %v", th.SmallSheetRootStyle, th.LargeSheetRootStyle)
	}
	if th.SmallSheetRootStyle == nil {
		t.Error("SmallSheetRootStyle should be filled in, got nil")
	}
	if th.Logo.FontScaleFactor != 14 {
		t.Errorf("Logo.FontScaleFactor = %v, want 14", th.Logo.FontScaleFactor)
	}
}

func TestNormalizeSmallStyleDefaultsToLargeStyle(t *testing.T) {
	seed := noirSeed()
	seed.LargeSheetRootStyle = Style{
		"backgroundColor": "#000",
		"&:hover":         map[string]any{"opacity": 0.9},
	}
	th, err := Normalize(seed)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if !reflect.DeepEqual(th.SmallSheetRootStyle, th.LargeSheetRootStyle) {
		t.Errorf("SmallSheetRootStyle = %v, want %v", th.SmallSheetRootStyle, th.LargeSheetRootStyle)
	}

	// The two must not share storage.
	th.SmallSheetRootStyle["backgroundColor"] = "#fff"
	if th.LargeSheetRootStyle["backgroundColor"] != "#000" {
		t.Error("mutating SmallSheetRootStyle changed LargeSheetRootStyle")
	}
}

func TestNormalizeKeepsExplicitOptionals(t *testing.T) {
	seed := noirSeed()
	seed.SmallSheetRootStyle = Style{"backgroundColor": "#333"}
	seed.Logo.FontScaleFactor = thFloat(9.5)
	seed.Colors.Danger = "#aa0000"
	seed.Colors.ControlBorder = "#444444"

	th, err := Normalize(seed)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if th.SmallSheetRootStyle["backgroundColor"] != "#333" {
		t.Errorf("SmallSheetRootStyle = %v", th.SmallSheetRootStyle)
	}
	if th.Logo.FontScaleFactor != 9.5 {
		t.Errorf("Logo.FontScaleFactor = %v, want 9.5", th.Logo.FontScaleFactor)
	}
	if th.Colors.Danger != "#aa0000" {
		t.Errorf("Colors.Danger = %q", th.Colors.Danger)
	}
	if th.Colors.ControlBorder != "#444444" {
		t.Errorf("Colors.ControlBorder = %q", th.Colors.ControlBorder)
	}
}

func TestNormalizeDoesNotModifySeed(t *testing.T) {
	seed := noirSeed()
	before := seed.Clone()
	if _, err := Normalize(seed); err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if !reflect.DeepEqual(seed, before) {
		t.Errorf("Normalize modified its input:\n got=%+v\nwant=%+v", seed, before)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for id, seed := range Builtins() {
		t.Run(id, func(t *testing.T) {
			first, err := Normalize(seed)
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			second, err := Normalize(first.Seed())
			if err != nil {
				t.Fatalf("Normalize(Seed()) error: %v", err)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("normalizing a complete seed changed it:\n got=%+v\nwant=%+v", second, first)
			}
		})
	}
}

// --- Derived colors ---

func TestDerivedColorsOpaqueBackgrounds(t *testing.T) {
	th, err := Normalize(noirSeed())
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	// Opaque backgrounds hide the wallpaper entirely.
	if th.Colors.BgOpaquePrimary != "#1a1a1a" {
		t.Errorf("BgOpaquePrimary = %q, want #1a1a1a", th.Colors.BgOpaquePrimary)
	}
	if th.Colors.BgOpaqueSecondary != "#242424" {
		t.Errorf("BgOpaqueSecondary = %q, want #242424", th.Colors.BgOpaqueSecondary)
	}
}

func TestDerivedDangerComputedFromRed(t *testing.T) {
	th, err := Normalize(noirSeed())
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	red := csscolor.MustParse("red")
	want := csscolor.MustParse("#1a1a1a").Mix(red, DangerMix)
	got := csscolor.MustParse(th.Colors.BgTransDangerPrimary)
	if !thNearColor(got, want) {
		t.Errorf("BgTransDangerPrimary = %q, want about %s", th.Colors.BgTransDangerPrimary, want)
	}

	// Same seed with danger spelled out gives identical derived colors.
	explicit := noirSeed()
	explicit.Colors.Danger = "red"
	th2, err := Normalize(explicit)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if th2.Colors.BgTransDangerPrimary != th.Colors.BgTransDangerPrimary ||
		th2.Colors.BgOpaqueDangerSecondary != th.Colors.BgOpaqueDangerSecondary {
		t.Errorf("default danger differs from explicit red: %+v vs %+v", th.Colors, th2.Colors)
	}
}

func TestDerivedTranslucentBackgrounds(t *testing.T) {
	seed := noirSeed()
	seed.Colors.Wallpaper = "#000000"
	seed.Colors.BackgroundPrimary = "rgba(255, 255, 255, 0.5)"

	th, err := Normalize(seed)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	opaque := csscolor.MustParse(th.Colors.BgOpaquePrimary)
	if !opaque.Opaque() {
		t.Errorf("BgOpaquePrimary = %q is not opaque", th.Colors.BgOpaquePrimary)
	}
	if math.Abs(opaque.R-0.5) > 1.0/255 {
		t.Errorf("BgOpaquePrimary = %q, want mid grey", th.Colors.BgOpaquePrimary)
	}

	trans := csscolor.MustParse(th.Colors.BgTransDangerPrimary)
	if math.Abs(trans.A-0.5) > 0.001 {
		t.Errorf("BgTransDangerPrimary alpha = %v, want 0.5", trans.A)
	}
	if !strings.HasPrefix(th.Colors.BgTransDangerPrimary, "rgba(") {
		t.Errorf("BgTransDangerPrimary = %q, want rgba()", th.Colors.BgTransDangerPrimary)
	}
	if !csscolor.MustParse(th.Colors.BgOpaqueDangerPrimary).Opaque() {
		t.Errorf("BgOpaqueDangerPrimary = %q is not opaque", th.Colors.BgOpaqueDangerPrimary)
	}
}

func thNearColor(a, b csscolor.Color) bool {
	const eps = 1.5 / 255
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

// --- Validation ---

func TestValidateInvalidColorPaths(t *testing.T) {
	setters := map[string]func(*Colors){
		"colors.accent":              func(c *Colors) { c.Accent = "notacolor" },
		"colors.accentContrast":      func(c *Colors) { c.AccentContrast = "#12" },
		"colors.glow":                func(c *Colors) { c.Glow = "rgb(1,2)" },
		"colors.wallpaper":           func(c *Colors) { c.Wallpaper = "url(bg.png)" },
		"colors.text":                func(c *Colors) { c.Text = "currentcolor" },
		"colors.backgroundButton":    func(c *Colors) { c.BackgroundButton = "#gggggg" },
		"colors.backgroundPrimary":   func(c *Colors) { c.BackgroundPrimary = "hsl(x, 1%, 1%)" },
		"colors.backgroundSecondary": func(c *Colors) { c.BackgroundSecondary = "blurple" },
		"colors.danger":              func(c *Colors) { c.Danger = "  " },
		"colors.controlBorder":       func(c *Colors) { c.ControlBorder = "#1234567" },
	}
	for path, set := range setters {
		t.Run(path, func(t *testing.T) {
			seed := noirSeed()
			set(&seed.Colors)

			_, err := Normalize(seed)
			if err == nil {
				t.Fatal("Normalize() should fail")
			}
			if !errors.Is(err, validation.ErrInvalid) {
				t.Errorf("error %v does not match validation.ErrInvalid", err)
			}
			fields := validation.Fields(err)
			if len(fields) != 1 || fields[0].Path != path {
				t.Errorf("field errors = %v, want exactly %q", fields, path)
			}
		})
	}
}

func TestValidateMissingRequired(t *testing.T) {
	err := Validate(Seed{})
	if err == nil {
		t.Fatal("Validate(Seed{}) should fail")
	}
	for _, path := range []string{
		"schemaVersion",
		"displayName",
		"largeSheetRootStyle",
		"logo.frontTextElementStyle",
		"logo.rearTextElementStyle",
		"logo.textElementsStyle",
		"logo.backdropStyle",
		"colors.accent",
		"colors.accentContrast",
		"colors.glow",
		"colors.wallpaper",
		"colors.text",
		"colors.backgroundButton",
		"colors.backgroundPrimary",
		"colors.backgroundSecondary",
	} {
		if !validation.HasPath(err, path) {
			t.Errorf("missing field error for %q in %v", path, err)
		}
	}
	for _, optional := range []string{"colors.danger", "colors.controlBorder", "smallSheetRootStyle"} {
		if validation.HasPath(err, optional) {
			t.Errorf("optional field %q reported as error", optional)
		}
	}
}

func TestValidateSchemaVersion(t *testing.T) {
	seed := noirSeed()
	seed.SchemaVersion = "v2"
	err := Validate(seed)
	if !validation.HasPath(err, "schemaVersion") {
		t.Fatalf("Validate() = %v, want schemaVersion error", err)
	}
	if !strings.Contains(err.Error(), `"v2"`) {
		t.Errorf("error should quote the bad version, got: %v", err)
	}
}

func TestValidateFontScaleFactor(t *testing.T) {
	for _, f := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		seed := noirSeed()
		seed.Logo.FontScaleFactor = thFloat(f)
		if err := Validate(seed); !validation.HasPath(err, "logo.fontScaleFactor") {
			t.Errorf("FontScaleFactor %v: Validate() = %v", f, err)
		}
	}
}

func TestValidateStyleValues(t *testing.T) {
	seed := noirSeed()
	seed.Logo.BackdropStyle = Style{
		"color":   "#fff",
		"opacity": 0.5,
		"zIndex":  int64(3),
		"&:hover": map[string]any{
			"color": []int{1, 2},
		},
		"fontFamily": []any{"Federo", map[string]any{}},
		"":           "x",
	}
	err := Validate(seed)
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, path := range []string{
		"logo.backdropStyle.&:hover.color",
		"logo.backdropStyle.fontFamily[1]",
		"logo.backdropStyle",
	} {
		if !validation.HasPath(err, path) {
			t.Errorf("missing error at %q: %v", path, err)
		}
	}
	if validation.HasPath(err, "logo.backdropStyle.color") || validation.HasPath(err, "logo.backdropStyle.opacity") {
		t.Errorf("valid style values reported: %v", err)
	}
}

// --- Builtins ---

func TestBuiltinsNormalize(t *testing.T) {
	builtins := Builtins()
	if len(builtins) != len(BuiltinIDs()) {
		t.Fatalf("Builtins() has %d seeds, BuiltinIDs() has %d", len(builtins), len(BuiltinIDs()))
	}
	for _, id := range BuiltinIDs() {
		seed, ok := builtins[id]
		if !ok {
			t.Fatalf("missing builtin %q", id)
		}
		t.Run(id, func(t *testing.T) {
			th, err := Normalize(seed)
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			for _, s := range thSwatches(th) {
				if !csscolor.Valid(s.value) {
					t.Errorf("%s = %q is not a valid CSS color", s.name, s.value)
				}
			}
		})
	}
}

func TestBuiltinsReturnsCopies(t *testing.T) {
	a := Builtins()[BuiltinTeal]
	a.LargeSheetRootStyle["backgroundImage"] = "none"
	b := Builtins()[BuiltinTeal]
	if b.LargeSheetRootStyle["backgroundImage"] == "none" {
		t.Error("Builtins() shares style maps between calls")
	}
}

// --- TOML / YAML ---

const noirTOML = `
schemaVersion = "v1"
displayName = "Noir"

[largeSheetRootStyle]
backgroundColor = "#000"

[logo]
fontScaleFactor = 12.0

[logo.frontTextElementStyle]
color = "#fff"

[logo.rearTextElementStyle]

[logo.textElementsStyle]

[logo.backdropStyle]

[logo.backdropStyle."&:hover"]
opacity = 0.5

[colors]
accent = "#ff0000"
accentContrast = "#ffffff"
glow = "#ff8888"
wallpaper = "#111111"
text = "#eeeeee"
backgroundButton = "#222222"
backgroundPrimary = "#1a1a1a"
backgroundSecondary = "#242424"
`

func TestLoadFromTOMLValid(t *testing.T) {
	seed, err := LoadFromTOML([]byte(noirTOML))
	if err != nil {
		t.Fatalf("LoadFromTOML() error: %v", err)
	}
	if seed.DisplayName != "Noir" {
		t.Errorf("DisplayName = %q, want %q", seed.DisplayName, "Noir")
	}
	if seed.Logo.FontScaleFactor == nil || *seed.Logo.FontScaleFactor != 12 {
		t.Errorf("Logo.FontScaleFactor = %v, want 12", seed.Logo.FontScaleFactor)
	}
	if seed.Logo.RearTextElementStyle == nil {
		t.Error("empty table should decode to an empty style, got nil")
	}
	hover, ok := seed.Logo.BackdropStyle["&:hover"].(map[string]any)
	if !ok || hover["opacity"] != 0.5 {
		t.Errorf("nested selector = %#v", seed.Logo.BackdropStyle["&:hover"])
	}
	if seed.SmallSheetRootStyle != nil {
		t.Errorf("SmallSheetRootStyle = %v, want nil before normalization", seed.SmallSheetRootStyle)
	}
}

func TestLoadFromTOMLInvalidColor(t *testing.T) {
	data := strings.Replace(noirTOML, `glow = "#ff8888"`, `glow = "glowing"`, 1)
	_, err := LoadFromTOML([]byte(data))
	if err == nil {
		t.Fatal("LoadFromTOML() should fail for an invalid color")
	}
	if !validation.HasPath(err, "colors.glow") {
		t.Errorf("error should name colors.glow, got: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "theme: ") {
		t.Errorf("error should carry the theme prefix, got: %v", err)
	}
}

func TestLoadFromTOMLUnknownKey(t *testing.T) {
	data := noirTOML + "\n[extras]\nfoo = 1\n"
	_, err := LoadFromTOML([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("LoadFromTOML() = %v, want unknown key error", err)
	}
}

func TestLoadFromTOMLSyntaxError(t *testing.T) {
	if _, err := LoadFromTOML([]byte("displayName = ")); err == nil {
		t.Error("LoadFromTOML() should fail on broken TOML")
	}
}

func TestSaveToTOMLRoundtrip(t *testing.T) {
	original := Builtins()[BuiltinPulp]

	data, err := SaveToTOML(original)
	if err != nil {
		t.Fatalf("SaveToTOML() error: %v", err)
	}
	loaded, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML(roundtrip) error: %v", err)
	}

	if loaded.DisplayName != original.DisplayName {
		t.Errorf("roundtrip DisplayName: %q -> %q", original.DisplayName, loaded.DisplayName)
	}
	if loaded.Colors != original.Colors {
		t.Errorf("roundtrip Colors: %+v -> %+v", original.Colors, loaded.Colors)
	}
	if *loaded.Logo.FontScaleFactor != *original.Logo.FontScaleFactor {
		t.Errorf("roundtrip FontScaleFactor: %v -> %v", *original.Logo.FontScaleFactor, *loaded.Logo.FontScaleFactor)
	}
	if loaded.AppWindowStyle["border"] != original.AppWindowStyle["border"] {
		t.Errorf("roundtrip AppWindowStyle: %v -> %v", original.AppWindowStyle, loaded.AppWindowStyle)
	}
}

func TestYAMLRoundtrip(t *testing.T) {
	original := Builtins()[BuiltinNice]

	data, err := SaveToYAML(original)
	if err != nil {
		t.Fatalf("SaveToYAML() error: %v", err)
	}
	if !bytes.Contains(data, []byte("displayName: Nice and Clean")) {
		t.Errorf("YAML output missing displayName:\n%s", data)
	}
	loaded, err := LoadFromYAML(data)
	if err != nil {
		t.Fatalf("LoadFromYAML(roundtrip) error: %v", err)
	}
	if loaded.Colors != original.Colors {
		t.Errorf("roundtrip Colors: %+v -> %+v", original.Colors, loaded.Colors)
	}
	if loaded.Logo.FrontTextElementStyle["color"] != "#5b3a1a" {
		t.Errorf("roundtrip logo style: %v", loaded.Logo.FrontTextElementStyle)
	}
}

func TestCodecsKeepEmptySmallStyle(t *testing.T) {
	seed := noirSeed()
	seed.LargeSheetRootStyle = Style{"color": "red"}
	seed.SmallSheetRootStyle = Style{}
	th, err := Normalize(seed)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	codecs := []struct {
		name string
		save func(Seed) ([]byte, error)
		load func([]byte) (Seed, error)
	}{
		{"toml", SaveToTOML, LoadFromTOML},
		{"yaml", SaveToYAML, LoadFromYAML},
	}
	for _, c := range codecs {
		t.Run(c.name, func(t *testing.T) {
			data, err := c.save(th.Seed())
			if err != nil {
				t.Fatalf("save error: %v", err)
			}
			loaded, err := c.load(data)
			if err != nil {
				t.Fatalf("load error: %v\n%s", err, data)
			}
			if loaded.SmallSheetRootStyle == nil || len(loaded.SmallSheetRootStyle) != 0 {
				t.Errorf("SmallSheetRootStyle = %#v, want empty non-nil", loaded.SmallSheetRootStyle)
			}
			again, err := Normalize(loaded)
			if err != nil {
				t.Fatalf("Normalize(reloaded) error: %v", err)
			}
			if !reflect.DeepEqual(again, th) {
				t.Errorf("reloaded theme differs:\n got %#v\nwant %#v", again, th)
			}
		})
	}
}

func TestCodecsKeepUnsetSmallStyle(t *testing.T) {
	seed := noirSeed()
	seed.LargeSheetRootStyle = Style{"color": "red"}

	for name, roundtrip := range map[string]func(Seed) (Seed, error){
		"toml": func(s Seed) (Seed, error) {
			data, err := SaveToTOML(s)
			if err != nil {
				return Seed{}, err
			}
			return LoadFromTOML(data)
		},
		"yaml": func(s Seed) (Seed, error) {
			data, err := SaveToYAML(s)
			if err != nil {
				return Seed{}, err
			}
			return LoadFromYAML(data)
		},
	} {
		t.Run(name, func(t *testing.T) {
			loaded, err := roundtrip(seed)
			if err != nil {
				t.Fatalf("roundtrip error: %v", err)
			}
			if loaded.SmallSheetRootStyle != nil {
				t.Errorf("SmallSheetRootStyle = %#v, want nil", loaded.SmallSheetRootStyle)
			}
		})
	}
}

func TestLoadFromYAMLUnknownField(t *testing.T) {
	data := []byte("schemaVersion: v1\ndisplayName: X\nwallpaperr: red\n")
	if _, err := LoadFromYAML(data); err == nil {
		t.Error("LoadFromYAML() should reject unknown fields")
	}
}

// --- Preview ---

func TestPreviewPlainText(t *testing.T) {
	th, err := Normalize(noirSeed())
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.Ascii)

	out := Preview(th, r)
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Ascii profile should not emit escape sequences: %q", out)
	}
	for _, want := range []string{"Noir", "accent", "#ff0000", "danger", "red", "bgOpaqueDangerSecondary"} {
		if !strings.Contains(out, want) {
			t.Errorf("Preview() missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != len(thSwatches(th))+1 {
		t.Errorf("Preview() has %d lines, want %d", lines, len(thSwatches(th))+1)
	}
}

func TestPreviewTrueColor(t *testing.T) {
	th, err := Normalize(noirSeed())
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.TrueColor)

	out := Preview(th, r)
	if !strings.Contains(out, "\x1b[") {
		t.Error("TrueColor profile should emit escape sequences")
	}
}
