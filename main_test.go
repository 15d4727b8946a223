package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noirDoc = `
kind = "theme"
id = "noir"

[theme]
schemaVersion = "v1"
displayName = "Noir"

[theme.largeSheetRootStyle]
[theme.logo.frontTextElementStyle]
[theme.logo.rearTextElementStyle]
[theme.logo.textElementsStyle]
[theme.logo.backdropStyle]

[theme.colors]
accent = "#ff0000"
accentContrast = "#ffffff"
glow = "#ff8888"
wallpaper = "#111111"
text = "#eeeeee"
backgroundButton = "#222222"
backgroundPrimary = "#1a1a1a"
backgroundSecondary = "#242424"
`

// runCLI runs the root command against a config whose theme directory
// holds noirDoc.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"INVESTIGATOR_THEME", "INVESTIGATOR_PRESET", "INVESTIGATOR_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	themes := filepath.Join(dir, "themes")
	require.NoError(t, os.MkdirAll(themes, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(themes, "noir.toml"), []byte(noirDoc), 0o600))

	cfgPath := filepath.Join(dir, "config.toml")
	cfg := "[logging]\nlevel = \"error\"\n[registry]\nbuiltins = true\n" +
		"theme_dirs = [\"" + filepath.ToSlash(themes) + "\"]\npreset_dirs = []\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestListIncludesBuiltinsAndDirectories(t *testing.T) {
	out, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "noir")
	assert.Contains(t, out, "tealTheme")
	assert.Contains(t, out, "niceBlackAgents")
}

func TestShowThemeFormats(t *testing.T) {
	out, err := runCLI(t, "show", "theme", "noir")
	require.NoError(t, err)
	assert.Contains(t, out, `danger = "red"`)
	assert.Contains(t, out, `controlBorder = "#eeeeee"`)

	out, err = runCLI(t, "show", "theme", "noir", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"fontScaleFactor": 14`)

	out, err = runCLI(t, "show", "preset", "moribundWorld", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "useMwStyleAbilities: true")

	_, err = runCLI(t, "show", "theme", "noir", "--format", "xml")
	assert.Error(t, err)
}

func TestShowUnknown(t *testing.T) {
	_, err := runCLI(t, "show", "theme", "missing")
	assert.Error(t, err)
	_, err = runCLI(t, "show", "layout", "noir")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	out, err := runCLI(t, "resolve")
	require.NoError(t, err)
	assert.Contains(t, out, "preset: niceBlackAgents")
	assert.Contains(t, out, "niceTheme")

	out, err = runCLI(t, "resolve", "ashenStars", "--theme", "noir")
	require.NoError(t, err)
	assert.Contains(t, out, "theme:  Noir (noir)")

	_, err = runCLI(t, "resolve", "ashenStars", "--theme", "missing")
	assert.Error(t, err)
}

func TestPreviewPlainWhenNotTerminal(t *testing.T) {
	out, err := runCLI(t, "preview", "noir")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "bgOpaqueDangerPrimary")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "noir.toml")
	require.NoError(t, os.WriteFile(good, []byte(noirDoc), 0o600))
	sys := filepath.Join(dir, "sys1.yaml")
	require.NoError(t, os.WriteFile(sys, []byte(
		"kind: preset\nid: sys1\npreset:\n  schemaVersion: v1\n  displayName: S\n  defaultTheme: noir\n  occupationLabel: Job\n"), 0o600))

	out, err := runCLI(t, "validate", sys, good)
	require.NoError(t, err, out)
	assert.Contains(t, out, "1 theme(s), 1 preset(s) valid")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(strings.Replace(noirDoc, `glow = "#ff8888"`, `glow = "shiny"`, 1)), 0o600))
	out, err = runCLI(t, "validate", bad)
	require.ErrorIs(t, err, errInvalidDocuments)
	assert.Contains(t, out, bad+": theme.colors.glow: invalid CSS color")
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "investigator-themes "+version))
}

func TestRootDescriptionIsPlainText(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "Theme and preset tooling for GUMSHOE character sheets", root.Short)
	for _, r := range root.Short + root.Long {
		assert.Less(t, r, rune(0x80), "Short contains non-ASCII %q", r)
	}
}

func TestPreviewColorAlways(t *testing.T) {
	t.Setenv("COLORTERM", "truecolor")
	out, err := runCLI(t, "preview", "noir", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	_, err = runCLI(t, "preview", "noir", "--color", "sometimes")
	assert.Error(t, err)
}

func TestDocs(t *testing.T) {
	out, err := runCLI(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "# investigator-themes Reference")
	assert.Contains(t, out, "`colors.controlBorder`")

	dir := t.TempDir()
	out, err = runCLI(t, "docs", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "presets.md"))
}
