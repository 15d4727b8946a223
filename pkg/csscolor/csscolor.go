// Package csscolor parses CSS color strings and does the small amount of
// color arithmetic the theme schema needs: alpha compositing, mixing, and
// formatting back to CSS.
package csscolor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrSyntax is returned (wrapped) for any string that is not a CSS color.
var ErrSyntax = errors.New("not a valid CSS color")

// Color is an sRGB color with straight (non-premultiplied) alpha.
type Color struct {
	colorful.Color
	A float64
}

// extraNames covers CSS Color 4 keywords missing from the SVG 1.1 table.
var extraNames = map[string]Color{
	"rebeccapurple": {Color: colorful.Color{R: 0x66 / 255.0, G: 0x33 / 255.0, B: 0x99 / 255.0}, A: 1},
	"transparent":   {A: 0},
}

// Parse parses a CSS color: hex (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/
// rgba(), hsl()/hsla() in comma or space syntax, and named colors.
// currentcolor is rejected since it does not name a concrete color.
func Parse(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrSyntax)
	}

	switch {
	case strings.HasPrefix(v, "#"):
		c, ok := parseHex(v[1:])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		return c, nil
	case strings.HasSuffix(v, ")"):
		c, err := parseFunc(v)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		return c, nil
	}

	if c, ok := extraNames[v]; ok {
		return c, nil
	}
	if rgba, ok := colornames.Map[v]; ok {
		return Color{
			Color: colorful.Color{R: float64(rgba.R) / 255, G: float64(rgba.G) / 255, B: float64(rgba.B) / 255},
			A:     1,
		}, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrSyntax, s)
}

// Valid reports whether s parses as a CSS color.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// MustParse is Parse for package-level constants; it panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Over composites c onto bg using c's alpha. bg is treated as opaque, so
// the result is always opaque.
func (c Color) Over(bg Color) Color {
	a := clamp01(c.A)
	return Color{Color: bg.Color.BlendRgb(c.Color, a).Clamped(), A: 1}
}

// Mix moves c toward other by t in RGB space and keeps c's alpha.
func (c Color) Mix(other Color, t float64) Color {
	return Color{Color: c.Color.BlendRgb(other.Color, clamp01(t)).Clamped(), A: c.A}
}

// String formats the color as #rrggbb when opaque and rgba() otherwise.
func (c Color) String() string {
	if c.Opaque() {
		return c.Color.Clamped().Hex()
	}
	r, g, b := c.Color.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(c.A))
}

func formatAlpha(a float64) string {
	a = math.Round(clamp01(a)*1000) / 1000
	return strconv.FormatFloat(a, 'f', -1, 64)
}

func parseHex(h string) (Color, bool) {
	var digits [8]uint8
	switch len(h) {
	case 3, 4:
		for i := 0; i < len(h); i++ {
			d, ok := hexDigit(h[i])
			if !ok {
				return Color{}, false
			}
			digits[i] = d<<4 | d
		}
		if len(h) == 3 {
			digits[3] = 0xff
		}
	case 6, 8:
		for i := 0; i < len(h); i += 2 {
			hi, ok1 := hexDigit(h[i])
			lo, ok2 := hexDigit(h[i+1])
			if !ok1 || !ok2 {
				return Color{}, false
			}
			digits[i/2] = hi<<4 | lo
		}
		if len(h) == 6 {
			digits[3] = 0xff
		}
	default:
		return Color{}, false
	}
	return Color{
		Color: colorful.Color{R: float64(digits[0]) / 255, G: float64(digits[1]) / 255, B: float64(digits[2]) / 255},
		A:     float64(digits[3]) / 255,
	}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

func parseFunc(v string) (Color, error) {
	open := strings.IndexByte(v, '(')
	if open < 0 {
		return Color{}, errors.New("missing '('")
	}
	name := v[:open]
	args, alpha, legacy, err := splitArgs(v[open+1 : len(v)-1])
	if err != nil {
		return Color{}, err
	}

	a := 1.0
	if alpha != "" {
		if a, err = parseAlpha(alpha); err != nil {
			return Color{}, err
		}
	}

	switch name {
	case "rgb", "rgba":
		var ch [3]float64
		pct := 0
		for i, arg := range args {
			if strings.HasSuffix(arg, "%") {
				pct++
			}
			if ch[i], err = parseChannel(arg); err != nil {
				return Color{}, err
			}
		}
		// Comma syntax does not allow numbers and percentages together.
		if legacy && pct != 0 && pct != len(args) {
			return Color{}, errors.New("mixed numbers and percentages")
		}
		return Color{Color: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, A: a}, nil
	case "hsl", "hsla":
		h, err := parseHue(args[0])
		if err != nil {
			return Color{}, err
		}
		s, err := parsePercentish(args[1], legacy)
		if err != nil {
			return Color{}, err
		}
		l, err := parsePercentish(args[2], legacy)
		if err != nil {
			return Color{}, err
		}
		return Color{Color: colorful.Hsl(h, s, l).Clamped(), A: a}, nil
	}
	return Color{}, fmt.Errorf("unsupported color function %q", name)
}

// splitArgs accepts "a, b, c[, d]" or "a b c[ / d]" and returns the three
// color components, the raw alpha (empty when absent) and whether the comma
// form was used.
func splitArgs(body string) ([]string, string, bool, error) {
	body = strings.TrimSpace(body)
	if strings.Contains(body, ",") {
		parts := strings.Split(body, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
			if parts[i] == "" {
				return nil, "", true, errors.New("empty argument")
			}
		}
		switch len(parts) {
		case 3:
			return parts, "", true, nil
		case 4:
			return parts[:3], parts[3], true, nil
		}
		return nil, "", true, fmt.Errorf("expected 3 or 4 arguments, got %d", len(parts))
	}

	alpha := ""
	if i := strings.IndexByte(body, '/'); i >= 0 {
		alpha = strings.TrimSpace(body[i+1:])
		body = body[:i]
		if alpha == "" {
			return nil, "", false, errors.New("missing alpha after '/'")
		}
	}
	parts := strings.Fields(body)
	if len(parts) != 3 {
		return nil, "", false, fmt.Errorf("expected 3 components, got %d", len(parts))
	}
	return parts, alpha, false, nil
}

// parseChannel reads an rgb() component as 0-255 or a percentage, clamped
// to [0,1] the way browsers clamp out-of-range values.
func parseChannel(s string) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := parseNumber(p)
		if err != nil {
			return 0, err
		}
		return clamp01(f / 100), nil
	}
	f, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return clamp01(f / 255), nil
}

func parseAlpha(s string) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := parseNumber(p)
		if err != nil {
			return 0, err
		}
		return clamp01(f / 100), nil
	}
	f, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return clamp01(f), nil
}

// parsePercentish reads hsl saturation/lightness. The space form also takes
// bare numbers as percentages; the comma form requires the '%'.
func parsePercentish(s string, legacy bool) (float64, error) {
	p, ok := strings.CutSuffix(s, "%")
	if !ok && legacy {
		return 0, fmt.Errorf("%q must be a percentage", s)
	}
	f, err := parseNumber(p)
	if err != nil {
		return 0, err
	}
	return clamp01(f / 100), nil
}

func parseHue(s string) (float64, error) {
	units := []struct {
		suffix string
		scale  float64
	}{
		{"deg", 1},
		{"grad", 360.0 / 400.0},
		{"rad", 180 / math.Pi},
		{"turn", 360},
	}
	scale := 1.0
	for _, u := range units {
		if p, ok := strings.CutSuffix(s, u.suffix); ok {
			s, scale = p, u.scale
			break
		}
	}
	f, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	h := math.Mod(f*scale, 360)
	if h < 0 {
		h += 360
	}
	return h, nil
}

// parseNumber accepts a CSS <number>: [+-] digits [. digits] [e [+-] digits],
// where either the integer or the fraction digits may be omitted.
func parseNumber(s string) (float64, error) {
	if !isCSSNumber(s) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

func isCSSNumber(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := scanDigits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits = scanDigits(s[i:])
		if fracDigits == 0 {
			return false
		}
		i += fracDigits
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}
	if i < len(s) && s[i] == 'e' {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		n := scanDigits(s[i:])
		if n == 0 {
			return false
		}
		i += n
	}
	return i == len(s)
}

func scanDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
