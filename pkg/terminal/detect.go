// Package terminal picks the color profile used when palettes are rendered
// to a terminal. Detection reads environment variables only; it never
// queries the terminal.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermGeneric Terminal = iota
	TermGhostty
	TermKitty
	TermWezTerm
	TermITerm2
	TermAlacritty
	TermGNOME
	TermVSCode
	TermTmux
	TermScreen
	TermEmacs
)

var terminalNames = [...]string{
	TermGeneric:   "generic",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermGNOME:     "vte",
	TermVSCode:    "vscode",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermEmacs:     "emacs",
}

func (t Terminal) String() string {
	if int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "generic"
}

// SupportsTrueColor reports whether the emulator renders 24-bit color.
// Multiplexers and unknown terminals report false; COLORTERM may still
// enable true color for them.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermGNOME, TermVSCode:
		return true
	}
	return false
}

// termPrograms maps lowercased TERM_PROGRAM values to terminals.
var termPrograms = map[string]Terminal{
	"ghostty":   TermGhostty,
	"kitty":     TermKitty,
	"wezterm":   TermWezTerm,
	"iterm.app": TermITerm2,
	"vscode":    TermVSCode,
	"alacritty": TermAlacritty,
	"tmux":      TermTmux,
}

// markerVars are emulator-specific variables, checked in order once
// TERM_PROGRAM and TERM have not identified the terminal.
var markerVars = []struct {
	name string
	term Terminal
}{
	{"KITTY_WINDOW_ID", TermKitty},
	{"ITERM_SESSION_ID", TermITerm2},
	{"WEZTERM_EXECUTABLE", TermWezTerm},
	{"VTE_VERSION", TermGNOME},
	{"INSIDE_EMACS", TermEmacs},
	{"TMUX", TermTmux},
	{"STY", TermScreen},
}

// Detect identifies the terminal emulator from TERM_PROGRAM, then TERM,
// then emulator-specific variables. Multiplexers are checked last so the
// outer emulator wins when it is visible.
func Detect() Terminal {
	if t, ok := termPrograms[strings.ToLower(os.Getenv("TERM_PROGRAM"))]; ok {
		return t
	}
	switch term := os.Getenv("TERM"); {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	}
	for _, m := range markerVars {
		if os.Getenv(m.name) != "" {
			return m.term
		}
	}
	return TermGeneric
}

// ColorMode is the user's choice for colored output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts "auto", "always" or "never"; empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("terminal: invalid color mode %q: must be auto, always or never", s)
}

// ColorProfile returns the profile to render with when writing to w.
// In auto mode, output that is not a terminal, NO_COLOR, or TERM=dumb
// yields termenv.Ascii.
func ColorProfile(w io.Writer, mode ColorMode) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return richest()
	}
	if !isTerminal(w) || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return termenv.Ascii
	}
	return richest()
}

// richest returns the best profile the environment claims to support.
func richest() termenv.Profile {
	ct := strings.ToLower(os.Getenv("COLORTERM"))
	if Detect().SupportsTrueColor() || ct == "truecolor" || ct == "24bit" {
		return termenv.TrueColor
	}
	if strings.Contains(os.Getenv("TERM"), "256color") {
		return termenv.ANSI256
	}
	return termenv.ANSI
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
